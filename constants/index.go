package constants

const (
	ROLE_ADMIN = "ADMIN"

	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_CREDENTIALS = "Invalid email or password"
	ACCOUNT_NOT_ACTIVE  = "Account is disabled"
	EMAIL_ALREADY_USED  = "An account with this email already exists"
	LOGIN_REQUIRED      = "Please log in"
	NOT_AUTHORIZED      = "Operation not authorized"

	OFFER_NOT_FOUND     = "Offer not found"
	OFFER_NAME_TAKEN    = "An offer with this name already exists"
	INVALID_PRICE       = "Price must be a positive amount with at most two decimals"
	INVALID_ACTIVE_FLAG = "Active flag must be true or false"
	CART_EMPTY          = "Your cart is empty. Add at least one offer before ordering"
	OFFER_NOT_IN_CART   = "Offer is not in the cart"
	ORDER_NOT_FOUND     = "Order not found"
	ORDER_FAILED        = "Could not place the order"
)
