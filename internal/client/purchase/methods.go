package purchase

// PaymentMethod is a manual payment channel the buyer transfers money to.
type PaymentMethod struct {
	ID      string
	Name    string
	Account string
}

// PaymentMethods is the fixed list offered in the first step.
var PaymentMethods = []PaymentMethod{
	{ID: "bank", Name: "Bank Transfer", Account: "10470981020708013"},
	{ID: "easypaisa", Name: "EasyPaisa", Account: "03159417898"},
	{ID: "jazzcash", Name: "JazzCash", Account: "03159417898"},
	{ID: "sadapay", Name: "SadaPay", Account: "03159417898"},
}

// MethodByID looks up a payment method.
func MethodByID(id string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
