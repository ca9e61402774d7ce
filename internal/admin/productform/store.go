package productform

import "time"

// Action is the tagged union of state transitions.
type Action interface{ isAction() }

// FormPatch shallow-merges into FormData; nil fields are left untouched.
type FormPatch struct {
	Name        *string
	Description *string
	Category    *string
	SKU         *string
	Price       *string
	Stock       *string
	Weight      *string
	Length      *string
	Width       *string
	Height      *string

	VariantEnabled    *bool
	PreOrder          *bool
	ShippingCourier   *bool
	ShippingInsurance *InsuranceMode
}

type SetFormData struct{ Patch FormPatch }

// SetFormErrors replaces the whole error map.
type SetFormErrors struct{ Errors FormErrors }

// SetVariants replaces the whole variant list (initial load).
type SetVariants struct{ Variants []VariantForm }

// AddVariant appends a fresh row with a timestamp temp id.
type AddVariant struct{}

// UpdateVariant mutates one field of the row at Index; out-of-range
// indexes are a no-op.
type UpdateVariant struct {
	Index int
	Field string
	Value string
}

// RemoveVariant drops the row at Index; later rows shift down.
type RemoveVariant struct{ Index int }

// ResetForm restores form defaults and clears errors. The loaded
// product and variant list are untouched.
type ResetForm struct{}

type SetProduct struct{ Product *Product }

type LoadingFlag int

const (
	FlagLoading LoadingFlag = iota
	FlagSaving
	FlagLoadingProduct
	FlagLoadingVariants
)

type SetLoading struct {
	Flag LoadingFlag
	On   bool
}

func (SetFormData) isAction()   {}
func (SetFormErrors) isAction() {}
func (SetVariants) isAction()   {}
func (AddVariant) isAction()    {}
func (UpdateVariant) isAction() {}
func (RemoveVariant) isAction() {}
func (ResetForm) isAction()     {}
func (SetProduct) isAction()    {}
func (SetLoading) isAction()    {}

// Reduce is the pure transition function. The returned State shares no
// mutable slice or map with the input.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetFormData:
		s.Form = applyPatch(s.Form, act.Patch)

	case SetFormErrors:
		errs := make(FormErrors, len(act.Errors))
		for k, v := range act.Errors {
			errs[k] = v
		}
		s.Errors = errs

	case SetVariants:
		s.Variants = copyVariants(act.Variants)

	case AddVariant:
		next := copyVariants(s.Variants)
		s.Variants = append(next, VariantForm{
			TempID:     time.Now().UnixMilli(),
			Attributes: map[string]string{},
			Status:     true,
			Selected:   false,
		})

	case UpdateVariant:
		if act.Index < 0 || act.Index >= len(s.Variants) {
			return s
		}
		next := copyVariants(s.Variants)
		setVariantField(&next[act.Index], act.Field, act.Value)
		s.Variants = next

	case RemoveVariant:
		if act.Index < 0 || act.Index >= len(s.Variants) {
			return s
		}
		next := make([]VariantForm, 0, len(s.Variants)-1)
		next = append(next, s.Variants[:act.Index]...)
		next = append(next, s.Variants[act.Index+1:]...)
		s.Variants = copyVariants(next)

	case ResetForm:
		s.Form = defaultFormData()
		s.Errors = FormErrors{}

	case SetProduct:
		s.Product = act.Product

	case SetLoading:
		switch act.Flag {
		case FlagLoading:
			s.Loading.Loading = act.On
		case FlagSaving:
			s.Loading.Saving = act.On
		case FlagLoadingProduct:
			s.Loading.LoadingProduct = act.On
		case FlagLoadingVariants:
			s.Loading.LoadingVariants = act.On
		}
	}

	return s
}

func applyPatch(f FormData, p FormPatch) FormData {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.SKU != nil {
		f.SKU = *p.SKU
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.Stock != nil {
		f.Stock = *p.Stock
	}
	if p.Weight != nil {
		f.Weight = *p.Weight
	}
	if p.Length != nil {
		f.Length = *p.Length
	}
	if p.Width != nil {
		f.Width = *p.Width
	}
	if p.Height != nil {
		f.Height = *p.Height
	}
	if p.VariantEnabled != nil {
		f.VariantEnabled = *p.VariantEnabled
	}
	if p.PreOrder != nil {
		f.PreOrder = *p.PreOrder
	}
	if p.ShippingCourier != nil {
		f.ShippingCourier = *p.ShippingCourier
	}
	if p.ShippingInsurance != nil {
		f.ShippingInsurance = *p.ShippingInsurance
	}
	return f
}

func setVariantField(v *VariantForm, field, value string) {
	switch field {
	case "name":
		v.Name = value
	case "sku":
		v.SKU = value
	case "price":
		v.Price = value
	case "stock":
		v.Stock = value
	case "weight":
		v.Weight = value
	case "status":
		v.Status = value == "true"
	case "selected":
		v.Selected = value == "true"
	}
}

func copyVariants(in []VariantForm) []VariantForm {
	if in == nil {
		return nil
	}
	out := make([]VariantForm, len(in))
	copy(out, in)
	for i := range out {
		if out[i].Attributes == nil {
			continue
		}
		attrs := make(map[string]string, len(out[i].Attributes))
		for k, v := range out[i].Attributes {
			attrs[k] = v
		}
		out[i].Attributes = attrs
	}
	return out
}

// Store holds the session state and applies actions through Reduce.
// All transitions are synchronous; the store itself performs no I/O.
type Store struct {
	state State
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) State() State { return s.state }

func (s *Store) Dispatch(actions ...Action) {
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}
