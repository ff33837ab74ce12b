package connector

var (
	_ RouterDataAccessor  = (*PaymentsAuthorizeRouterData)(nil)
	_ RouterDataAccessor  = (*RefundExecuteRouterData)(nil)
	_ ConnectorMetaSource = (*PaymentsSyncRouterData)(nil)

	_ PaymentsAuthorizeRequest = PaymentsAuthorizeData{}
	_ AutoCaptureRequest       = CompleteAuthorizeData{}
	_ PaymentsSyncRequest      = PaymentsSyncData{}
	_ PaymentsCancelRequest    = PaymentsCancelData{}
	_ RefundsRequest           = RefundsData{}
	_ AccessTokenRequest       = AccessTokenRequestData{}

	_ BrowserInformationAccessor = BrowserInformation{}
	_ CardAccessor               = Card{}
	_ AddressDetailsAccessor     = AddressDetails{}
	_ PhoneDetailsAccessor       = PhoneDetails{}
	_ MandateAccessor            = MandateAmountData{}
	_ MandateReferenceAccessor   = ConnectorMandateReferenceID{}

	_ WalletData = GooglePayWalletData{}
	_ WalletData = ApplePayWalletData{}
	_ WalletData = PaypalSdkData{}
	_ WalletData = PaypalRedirection{}
	_ WalletData = AliPayRedirection{}
	_ WalletData = WeChatPayRedirection{}
	_ WalletData = MbWayRedirection{}
	_ WalletData = SamsungPay{}
	_ WalletData = GooglePayRedirect{}
	_ WalletData = ApplePayRedirect{}

	_ PaymentMethodData  = CardPaymentMethod{}
	_ MandateReferenceID = NetworkMandateID{}
	_ MandateType        = MultiUse{}
	_ ResponseID         = NoResponseID{}
)
