package connector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goliatone/go-connectors/core"
)

func TestMandateAmountData_GetEndDate(t *testing.T) {
	_, err := MandateAmountData{}.GetEndDate(DateFormatYYYYMMDD)
	assertMissingField(t, err, "mandate_data.mandate_type.{multi_use|single_use}.end_date")

	end := time.Date(2030, time.July, 4, 13, 5, 9, 0, time.UTC)
	data := MandateAmountData{EndDate: &end}
	if got, err := data.GetEndDate(DateFormatYYYYMMDDHHmmss); err != nil || got != "20300704130509" {
		t.Fatalf("expected 20300704130509, got %q (%v)", got, err)
	}
	if got, err := data.GetEndDate(DateFormatYYYYMMDD); err != nil || got != "20300704" {
		t.Fatalf("expected 20300704, got %q (%v)", got, err)
	}
	if _, err := data.GetEndDate("DD/MM/YYYY"); !core.IsKind(err, core.ErrorDateFormattingFailed) {
		t.Fatalf("expected date formatting failure, got %v", err)
	}
}

func TestFormatDate_UsesUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	value := time.Date(2030, time.January, 1, 1, 0, 0, 0, zone)
	got, err := FormatDate(value, DateFormatYYYYMMDDHHmmss)
	if err != nil || got != "20291231230000" {
		t.Fatalf("expected 20291231230000, got %q (%v)", got, err)
	}
}

func TestMandateAmountData_GetMetadata(t *testing.T) {
	_, err := MandateAmountData{}.GetMetadata()
	assertMissingField(t, err, "mandate_data.mandate_type.{multi_use|single_use}.metadata")

	_, err = MandateAmountData{Metadata: json.RawMessage(` null `)}.GetMetadata()
	assertMissingField(t, err, "mandate_data.mandate_type.{multi_use|single_use}.metadata")

	data := MandateAmountData{Metadata: json.RawMessage(`{"frequency":"monthly"}`)}
	got, err := data.GetMetadata()
	if err != nil || string(got) != `{"frequency":"monthly"}` {
		t.Fatalf("unexpected metadata %s (%v)", got, err)
	}
}

func TestMandateTypes(t *testing.T) {
	single := SingleUse{Data: MandateAmountData{Amount: 100}}
	if single.AmountData() == nil || single.AmountData().Amount != 100 {
		t.Fatalf("expected single use amount data")
	}
	if (MultiUse{}).AmountData() != nil {
		t.Fatalf("expected empty multi use to carry no amount data")
	}

	_, err := ConnectorMandateReferenceID{}.GetConnectorMandateID()
	assertMissingField(t, err, "mandate_id")
	id, err := ConnectorMandateReferenceID{ConnectorMandateID: ptr("cm_9")}.GetConnectorMandateID()
	if err != nil || id != "cm_9" {
		t.Fatalf("expected cm_9, got %q (%v)", id, err)
	}
}
