// Package productform implements the admin product edit session: a
// reducer-driven form state store, a pure validator, and a persistence
// adapter that talks to the admin product API.
package productform

// InsuranceMode mirrors the shipping insurance selector on the form.
type InsuranceMode string

const (
	InsuranceRequired InsuranceMode = "required"
	InsuranceOptional InsuranceMode = "optional"
)

// FormData mirrors product fields as strings for input binding, plus
// UI-only flags. It is never persisted as-is; Save transforms it into
// API payloads.
type FormData struct {
	Name        string
	Description string
	Category    string
	SKU         string
	Price       string
	Stock       string
	Weight      string
	Length      string
	Width       string
	Height      string

	VariantEnabled    bool
	PreOrder          bool
	ShippingCourier   bool
	ShippingInsurance InsuranceMode
}

// VariantForm is one editable variant row. TempID gives unsaved rows a
// local identity; backend ids are not stable across saves because the
// whole set is recreated on every save.
type VariantForm struct {
	TempID int64
	ID     uint

	Name       string
	SKU        string
	Price      string
	Stock      string
	Weight     string
	Attributes map[string]string

	Status   bool
	Selected bool
}

// FormErrors maps a field key (including composite keys such as
// variant_0_price) to a message. Replaced wholesale on every validation
// pass, never merged.
type FormErrors map[string]string

// LoadingStates are independent in-flight flags. Each is set before its
// operation starts and cleared in its completion path, success or failure.
type LoadingStates struct {
	Loading         bool
	Saving          bool
	LoadingProduct  bool
	LoadingVariants bool
}

// State is the complete editing-session state. Reduce treats it as
// immutable-per-step: variant slices and error maps are copied before
// modification.
type State struct {
	Product  *Product
	Form     FormData
	Errors   FormErrors
	Variants []VariantForm
	Loading  LoadingStates
}

func defaultFormData() FormData {
	return FormData{ShippingInsurance: InsuranceOptional}
}

func newState() State {
	return State{
		Form:   defaultFormData(),
		Errors: FormErrors{},
	}
}
