package checkout

// Navigation targets the client is told to move to.
const (
	RedirectProducts = "/products"
	RedirectAccount  = "/dashboard"
)

// User-facing messages, kept in the shop's language.
const (
	MsgSelectBank        = "Por favor selecciona un banco"
	MsgLoginToBuy        = "Debes iniciar sesión para realizar la compra"
	MsgLoginToContinue   = "Inicia sesión para continuar con tu compra"
	MsgPaymentInProgress = "Ya hay un pago en proceso"
	MsgGenericError      = "Error al procesar el pago. Revisa los datos."

	successFormat     = "¡Pago procesado con éxito a través de %s!"
	descriptionFormat = "Compra de %d productos (Orden #%s)"
)
