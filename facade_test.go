package connectors

import (
	"context"
	"encoding/json"
	"testing"

	gocmd "github.com/goliatone/go-command"
	connectorscommand "github.com/goliatone/go-connectors/command"
	"github.com/goliatone/go-connectors/core"
	connectorsquery "github.com/goliatone/go-connectors/query"
)

func TestNewFacade_RequiresService(t *testing.T) {
	if _, err := NewFacade(nil); err == nil {
		t.Fatalf("expected error for nil service")
	}
	var facade *Facade
	if facade.Service() != nil {
		t.Fatalf("expected nil service from nil facade")
	}
	if facade.Commands().CreateConnectorAccount != nil {
		t.Fatalf("expected empty commands from nil facade")
	}
}

func TestFacade_CommandsAndQueriesRunAgainstService(t *testing.T) {
	svc, err := NewService(Config{}, WithConnectorAccountStore(newMemoryAccountStore()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	facade, err := NewFacade(svc)
	if err != nil {
		t.Fatalf("new facade: %v", err)
	}
	ctx := context.Background()

	collector := gocmd.NewResult[core.MerchantConnectorAccount]()
	createCtx := gocmd.ContextWithResult(ctx, collector)
	if err := facade.Commands().CreateConnectorAccount.Execute(createCtx, connectorscommand.CreateConnectorAccountMessage{
		Input: core.NewMerchantConnectorAccount{
			MerchantID:          "merchant_1",
			ConnectorName:       "checkout",
			MerchantConnectorID: "mca_1",
			Metadata:            json.RawMessage(`{"acquirer":"cko"}`),
		},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	created, ok := collector.Load()
	if !ok || created.ID == "" {
		t.Fatalf("expected created account in result collector")
	}

	loaded, err := facade.Queries().GetConnectorAccount.Query(ctx, connectorsquery.GetConnectorAccountMessage{ID: created.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.MerchantConnectorID != "mca_1" {
		t.Fatalf("unexpected account %#v", loaded)
	}

	metadata, err := facade.Queries().ConnectorMetadata.Query(ctx, connectorsquery.ConnectorMetadataMessage{
		MerchantID:          "merchant_1",
		MerchantConnectorID: "mca_1",
	})
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if string(metadata) != `{"acquirer":"cko"}` {
		t.Fatalf("unexpected metadata %s", metadata)
	}

	disabled := true
	if err := facade.Commands().UpdateConnectorAccount.Execute(ctx, connectorscommand.UpdateConnectorAccountMessage{
		MerchantID:          "merchant_1",
		MerchantConnectorID: "mca_1",
		Update:              core.MerchantConnectorAccountUpdate{Disabled: &disabled},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	enabled, err := facade.Queries().ListConnectorAccounts.Query(ctx, connectorsquery.ListConnectorAccountsMessage{
		MerchantID: "merchant_1",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(enabled) != 0 {
		t.Fatalf("expected disabled account to be filtered, got %d", len(enabled))
	}
}
