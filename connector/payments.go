package connector

import (
	"errors"
	"net/netip"

	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/currency"
)

type CaptureMethod string

const (
	CaptureMethodAutomatic      CaptureMethod = "automatic"
	CaptureMethodManual         CaptureMethod = "manual"
	CaptureMethodManualMultiple CaptureMethod = "manual_multiple"
	CaptureMethodScheduled      CaptureMethod = "scheduled"
)

// AutoCaptureRequest reports whether a payment is captured on authorization.
type AutoCaptureRequest interface {
	IsAutoCapture() (bool, error)
}

func isAutoCapture(method *CaptureMethod) (bool, error) {
	if method == nil {
		return true, nil
	}
	switch *method {
	case CaptureMethodAutomatic:
		return true, nil
	case CaptureMethodManual:
		return false, nil
	default:
		return false, core.NewError(core.ErrorCaptureMethodNotSupported, "", map[string]any{
			core.MetadataSubject: string(*method),
		})
	}
}

type BrowserInformation struct {
	ColorDepth        *uint8      `json:"color_depth,omitempty"`
	JavaEnabled       *bool       `json:"java_enabled,omitempty"`
	JavaScriptEnabled *bool       `json:"java_script_enabled,omitempty"`
	Language          *string     `json:"language,omitempty"`
	ScreenHeight      *uint32     `json:"screen_height,omitempty"`
	ScreenWidth       *uint32     `json:"screen_width,omitempty"`
	TimeZone          *int32      `json:"time_zone,omitempty"`
	IPAddress         *netip.Addr `json:"ip_address,omitempty"`
	AcceptHeader      *string     `json:"accept_header,omitempty"`
	UserAgent         *string     `json:"user_agent,omitempty"`
}

type BrowserInformationAccessor interface {
	GetIPAddress() (netip.Addr, error)
}

func (b BrowserInformation) GetIPAddress() (netip.Addr, error) {
	return required(b.IPAddress, "ip_address")
}

type OrderDetails struct {
	ProductName string `json:"product_name"`
	Quantity    uint16 `json:"quantity"`
	Amount      int64  `json:"amount"`
}

type PaymentsAuthorizeData struct {
	PaymentMethodData    PaymentMethodData   `json:"-"`
	Amount               int64               `json:"amount"`
	Currency             currency.Code       `json:"currency"`
	Confirm              bool                `json:"confirm"`
	CaptureMethod        *CaptureMethod      `json:"capture_method,omitempty"`
	Email                *Secret             `json:"email,omitempty"`
	BrowserInfo          *BrowserInformation `json:"browser_info,omitempty"`
	OrderDetails         []OrderDetails      `json:"order_details,omitempty"`
	RouterReturnURL      *string             `json:"router_return_url,omitempty"`
	WebhookURL           *string             `json:"webhook_url,omitempty"`
	CompleteAuthorizeURL *string             `json:"complete_authorize_url,omitempty"`
	MandateID            *MandateIDs         `json:"mandate_id,omitempty"`
	SetupMandateDetails  *MandateData        `json:"setup_mandate_details,omitempty"`
	StatementDescriptor  *string             `json:"statement_descriptor,omitempty"`
}

type PaymentsAuthorizeRequest interface {
	AutoCaptureRequest
	GetEmail() (Secret, error)
	GetBrowserInfo() (BrowserInformation, error)
	GetOrderDetails() ([]OrderDetails, error)
	GetCard() (Card, error)
	GetReturnURL() (string, error)
	ConnectorMandateID() (string, bool)
	IsMandatePayment() bool
	GetWebhookURL() (string, error)
	GetRouterReturnURL() (string, error)
}

func (d PaymentsAuthorizeData) IsAutoCapture() (bool, error) {
	return isAutoCapture(d.CaptureMethod)
}

func (d PaymentsAuthorizeData) GetEmail() (Secret, error) {
	return required(d.Email, "email")
}

func (d PaymentsAuthorizeData) GetBrowserInfo() (BrowserInformation, error) {
	return required(d.BrowserInfo, "browser_info")
}

func (d PaymentsAuthorizeData) GetOrderDetails() ([]OrderDetails, error) {
	if d.OrderDetails == nil {
		return nil, core.MissingField("order_details")
	}
	return append([]OrderDetails{}, d.OrderDetails...), nil
}

func (d PaymentsAuthorizeData) GetCard() (Card, error) {
	if method, ok := d.PaymentMethodData.(CardPaymentMethod); ok {
		return method.Card, nil
	}
	return Card{}, core.MissingField("card")
}

// GetReturnURL reads the router return url.
func (d PaymentsAuthorizeData) GetReturnURL() (string, error) {
	return required(d.RouterReturnURL, "return_url")
}

// ConnectorMandateID reports the processor's mandate id, when the payment
// references one.
func (d PaymentsAuthorizeData) ConnectorMandateID() (string, bool) {
	if d.MandateID == nil {
		return "", false
	}
	reference, ok := d.MandateID.MandateReferenceID.(ConnectorMandateReferenceID)
	if !ok || reference.ConnectorMandateID == nil {
		return "", false
	}
	return *reference.ConnectorMandateID, true
}

func (d PaymentsAuthorizeData) IsMandatePayment() bool {
	if d.SetupMandateDetails != nil {
		return true
	}
	return d.MandateID != nil && d.MandateID.MandateReferenceID != nil
}

func (d PaymentsAuthorizeData) GetWebhookURL() (string, error) {
	return required(d.WebhookURL, "webhook_url")
}

// GetRouterReturnURL reports "router_return_url" when missing; older connector
// fixtures expect "webhook_url" for this accessor.
func (d PaymentsAuthorizeData) GetRouterReturnURL() (string, error) {
	return required(d.RouterReturnURL, "router_return_url")
}

type CompleteAuthorizeData struct {
	Amount                 int64               `json:"amount"`
	Currency               currency.Code       `json:"currency"`
	CaptureMethod          *CaptureMethod      `json:"capture_method,omitempty"`
	Email                  *Secret             `json:"email,omitempty"`
	BrowserInfo            *BrowserInformation `json:"browser_info,omitempty"`
	ConnectorTransactionID *string             `json:"connector_transaction_id,omitempty"`
	Payload                []byte              `json:"payload,omitempty"`
}

func (d CompleteAuthorizeData) IsAutoCapture() (bool, error) {
	return isAutoCapture(d.CaptureMethod)
}

// ResponseID identifies a processor-side payment resource.
type ResponseID interface {
	isResponseID()
}

type (
	TransactionResponseID string
	EncodedResponseID     string
	NoResponseID          struct{}
)

func (TransactionResponseID) isResponseID() {}
func (EncodedResponseID) isResponseID()     {}
func (NoResponseID) isResponseID()          {}

type PaymentsSyncData struct {
	ConnectorTransactionID ResponseID     `json:"-"`
	EncodedData            *string        `json:"encoded_data,omitempty"`
	CaptureMethod          *CaptureMethod `json:"capture_method,omitempty"`
}

type PaymentsSyncRequest interface {
	AutoCaptureRequest
	GetConnectorTransactionID() (string, error)
}

func (d PaymentsSyncData) IsAutoCapture() (bool, error) {
	return isAutoCapture(d.CaptureMethod)
}

func (d PaymentsSyncData) GetConnectorTransactionID() (string, error) {
	if id, ok := d.ConnectorTransactionID.(TransactionResponseID); ok {
		return string(id), nil
	}
	cause := errors.New("incorrect value provided for field: connector_transaction_id")
	return "", core.WrapError(cause, core.ErrorMissingConnectorTransactionID, "expected connector transaction id not found", map[string]any{
		core.MetadataFieldName: "connector_transaction_id",
	})
}

type PaymentsCancelData struct {
	ConnectorTransactionID string         `json:"connector_transaction_id"`
	Amount                 *int64         `json:"amount,omitempty"`
	Currency               *currency.Code `json:"currency,omitempty"`
	CancellationReason     *string        `json:"cancellation_reason,omitempty"`
}

type PaymentsCancelRequest interface {
	GetAmount() (int64, error)
	GetCurrency() (currency.Code, error)
	GetCancellationReason() (string, error)
}

func (d PaymentsCancelData) GetAmount() (int64, error) {
	return required(d.Amount, "amount")
}

func (d PaymentsCancelData) GetCurrency() (currency.Code, error) {
	return required(d.Currency, "currency")
}

func (d PaymentsCancelData) GetCancellationReason() (string, error) {
	return required(d.CancellationReason, "cancellation_reason")
}

type PaymentsCaptureData struct {
	AmountToCapture        int64         `json:"amount_to_capture"`
	Currency               currency.Code `json:"currency"`
	ConnectorTransactionID string        `json:"connector_transaction_id"`
}
