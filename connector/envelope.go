package connector

import (
	"encoding/json"

	"github.com/goliatone/go-connectors/core"
)

// Flow markers parameterize RouterData by operation.
type (
	Authorize         struct{}
	CompleteAuthorize struct{}
	PSync             struct{}
	Void              struct{}
	Capture           struct{}
	Execute           struct{}
	RSync             struct{}
	AccessTokenAuth   struct{}
)

type AuthenticationType string

const (
	AuthenticationTypeThreeDS   AuthenticationType = "three_ds"
	AuthenticationTypeNoThreeDS AuthenticationType = "no_three_ds"
)

// RouterData is the request envelope for one processor call of flow F.
type RouterData[F, Req, Resp any] struct {
	MerchantID         string             `json:"merchant_id"`
	Connector          string             `json:"connector"`
	PaymentID          string             `json:"payment_id"`
	AttemptID          string             `json:"attempt_id"`
	Description        *string            `json:"description,omitempty"`
	ReturnURL          *string            `json:"return_url,omitempty"`
	Address            PaymentAddress     `json:"address"`
	AuthType           AuthenticationType `json:"auth_type,omitempty"`
	ConnectorMetaData  json.RawMessage    `json:"connector_meta_data,omitempty"`
	SessionToken       *string            `json:"session_token,omitempty"`
	PaymentMethodToken *string            `json:"payment_method_token,omitempty"`
	CustomerID         *string            `json:"customer_id,omitempty"`
	ConnectorCustomer  *string            `json:"connector_customer,omitempty"`
	Request            Req                `json:"request"`
	Response           Resp               `json:"response"`
}

type (
	PaymentsAuthorizeRouterData         = RouterData[Authorize, PaymentsAuthorizeData, PaymentsResponseData]
	PaymentsCompleteAuthorizeRouterData = RouterData[CompleteAuthorize, CompleteAuthorizeData, PaymentsResponseData]
	PaymentsSyncRouterData              = RouterData[PSync, PaymentsSyncData, PaymentsResponseData]
	PaymentsCancelRouterData            = RouterData[Void, PaymentsCancelData, PaymentsResponseData]
	PaymentsCaptureRouterData           = RouterData[Capture, PaymentsCaptureData, PaymentsResponseData]
	RefundExecuteRouterData             = RouterData[Execute, RefundsData, RefundsResponseData]
	RefundSyncRouterData                = RouterData[RSync, RefundsData, RefundsResponseData]
	RefreshTokenRouterData              = RouterData[AccessTokenAuth, AccessTokenRequestData, AccessToken]
)

type RouterDataAccessor interface {
	ConnectorMetaSource
	GetBilling() (Address, error)
	GetBillingCountry() (CountryAlpha2, error)
	GetBillingPhone() (PhoneDetails, error)
	GetDescription() (string, error)
	GetReturnURL() (string, error)
	GetBillingAddress() (AddressDetails, error)
	GetShippingAddress() (AddressDetails, error)
	GetSessionToken() (string, error)
	IsThreeDS() bool
	GetPaymentMethodToken() (string, error)
	GetCustomerID() (string, error)
	GetConnectorCustomerID() (string, error)
}

func (r *RouterData[F, Req, Resp]) GetBilling() (Address, error) {
	return required(r.Address.Billing, "billing")
}

func (r *RouterData[F, Req, Resp]) GetBillingCountry() (CountryAlpha2, error) {
	if billing := r.Address.Billing; billing != nil && billing.Address != nil && billing.Address.Country != nil {
		return *billing.Address.Country, nil
	}
	return "", core.MissingField("billing.address.country")
}

func (r *RouterData[F, Req, Resp]) GetBillingPhone() (PhoneDetails, error) {
	if billing := r.Address.Billing; billing != nil && billing.Phone != nil {
		return *billing.Phone, nil
	}
	return PhoneDetails{}, core.MissingField("billing.phone")
}

func (r *RouterData[F, Req, Resp]) GetDescription() (string, error) {
	return required(r.Description, "description")
}

func (r *RouterData[F, Req, Resp]) GetReturnURL() (string, error) {
	return required(r.ReturnURL, "return_url")
}

func (r *RouterData[F, Req, Resp]) GetBillingAddress() (AddressDetails, error) {
	if billing := r.Address.Billing; billing != nil && billing.Address != nil {
		return *billing.Address, nil
	}
	return AddressDetails{}, core.MissingField("billing.address")
}

func (r *RouterData[F, Req, Resp]) GetShippingAddress() (AddressDetails, error) {
	if shipping := r.Address.Shipping; shipping != nil && shipping.Address != nil {
		return *shipping.Address, nil
	}
	return AddressDetails{}, core.MissingField("shipping.address")
}

func (r *RouterData[F, Req, Resp]) GetConnectorMeta() (json.RawMessage, error) {
	return RequireConnectorMeta(r.ConnectorMetaData)
}

func (r *RouterData[F, Req, Resp]) GetSessionToken() (string, error) {
	return required(r.SessionToken, "session_token")
}

func (r *RouterData[F, Req, Resp]) IsThreeDS() bool {
	return r.AuthType == AuthenticationTypeThreeDS
}

func (r *RouterData[F, Req, Resp]) GetPaymentMethodToken() (string, error) {
	return required(r.PaymentMethodToken, "payment_method_token")
}

func (r *RouterData[F, Req, Resp]) GetCustomerID() (string, error) {
	return required(r.CustomerID, "customer_id")
}

func (r *RouterData[F, Req, Resp]) GetConnectorCustomerID() (string, error) {
	return required(r.ConnectorCustomer, "connector_customer_id")
}

type PaymentsResponseData struct {
	ResourceID        ResponseID      `json:"-"`
	RedirectionURL    *string         `json:"redirection_url,omitempty"`
	MandateReference  *string         `json:"mandate_reference,omitempty"`
	ConnectorMetadata json.RawMessage `json:"connector_metadata,omitempty"`
}

type RefundsResponseData struct {
	ConnectorRefundID string `json:"connector_refund_id"`
	RefundStatus      string `json:"refund_status"`
}

type AccessToken struct {
	Token   Secret `json:"token"`
	Expires int64  `json:"expires"`
}
