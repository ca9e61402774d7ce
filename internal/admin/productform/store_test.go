package productform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceSetFormDataMergesPatch(t *testing.T) {
	s := newState()

	name := "Pistachio Cangkang"
	price := "64000"
	s = Reduce(s, SetFormData{FormPatch{Name: &name, Price: &price}})

	assert.Equal(t, "Pistachio Cangkang", s.Form.Name)
	assert.Equal(t, "64000", s.Form.Price)
	assert.Equal(t, InsuranceOptional, s.Form.ShippingInsurance)

	desc := "Roasted, lightly salted."
	s = Reduce(s, SetFormData{FormPatch{Description: &desc}})

	assert.Equal(t, "Pistachio Cangkang", s.Form.Name, "untouched fields survive later patches")
	assert.Equal(t, "Roasted, lightly salted.", s.Form.Description)
}

func TestReduceAddThenRemoveRestoresList(t *testing.T) {
	s := newState()

	s = Reduce(s, AddVariant{})
	require.Len(t, s.Variants, 1)
	assert.NotZero(t, s.Variants[0].TempID)
	assert.True(t, s.Variants[0].Status)
	assert.False(t, s.Variants[0].Selected)
	assert.NotNil(t, s.Variants[0].Attributes)

	s = Reduce(s, RemoveVariant{Index: 0})
	assert.Empty(t, s.Variants)
}

func TestReduceRemoveVariantShiftsLaterRows(t *testing.T) {
	s := newState()
	s = Reduce(s, SetVariants{[]VariantForm{
		{Name: "250g"},
		{Name: "500g"},
		{Name: "1kg"},
	}})

	s = Reduce(s, RemoveVariant{Index: 1})

	require.Len(t, s.Variants, 2)
	assert.Equal(t, "250g", s.Variants[0].Name)
	assert.Equal(t, "1kg", s.Variants[1].Name)
}

func TestReduceUpdateVariantOutOfRangeIsNoop(t *testing.T) {
	s := newState()
	s = Reduce(s, SetVariants{[]VariantForm{{Name: "250g"}}})

	before := s
	s = Reduce(s, UpdateVariant{Index: 5, Field: "name", Value: "1kg"})
	assert.Equal(t, before, s)

	s = Reduce(s, UpdateVariant{Index: -1, Field: "name", Value: "1kg"})
	assert.Equal(t, before, s)
}

func TestReduceUpdateVariantFields(t *testing.T) {
	s := newState()
	s = Reduce(s, SetVariants{[]VariantForm{
		{Name: "250g", Status: true},
		{Name: "500g", SKU: "PST-500", Price: "120000", Status: true},
	}})

	s = Reduce(s, UpdateVariant{Index: 0, Field: "sku", Value: "PST-250"})
	s = Reduce(s, UpdateVariant{Index: 0, Field: "price", Value: "64000"})
	s = Reduce(s, UpdateVariant{Index: 0, Field: "status", Value: "false"})
	s = Reduce(s, UpdateVariant{Index: 0, Field: "selected", Value: "true"})

	v := s.Variants[0]
	assert.Equal(t, "PST-250", v.SKU)
	assert.Equal(t, "64000", v.Price)
	assert.False(t, v.Status)
	assert.True(t, v.Selected)

	// Other rows stay byte-for-byte identical.
	assert.Equal(t, VariantForm{Name: "500g", SKU: "PST-500", Price: "120000", Status: true}, s.Variants[1])
}

func TestReduceDoesNotShareSlicesWithInput(t *testing.T) {
	s := newState()
	s = Reduce(s, SetVariants{[]VariantForm{{Name: "250g", Attributes: map[string]string{"size": "250g"}}}})

	next := Reduce(s, UpdateVariant{Index: 0, Field: "name", Value: "1kg"})

	assert.Equal(t, "250g", s.Variants[0].Name, "input state must stay untouched")
	assert.Equal(t, "1kg", next.Variants[0].Name)

	next.Variants[0].Attributes["size"] = "1kg"
	assert.Equal(t, "250g", s.Variants[0].Attributes["size"], "attribute maps must not be shared")
}

func TestReduceResetFormKeepsProductAndVariants(t *testing.T) {
	s := newState()
	name := "Pistachio Cangkang"
	s = Reduce(s, SetFormData{FormPatch{Name: &name}})
	s = Reduce(s, SetFormErrors{FormErrors{"name": "bad"}})
	s = Reduce(s, SetProduct{&Product{ID: 7}})
	s = Reduce(s, SetVariants{[]VariantForm{{Name: "250g"}}})

	s = Reduce(s, ResetForm{})

	assert.Equal(t, defaultFormData(), s.Form)
	assert.Empty(t, s.Errors)
	require.NotNil(t, s.Product)
	assert.Equal(t, uint(7), s.Product.ID)
	assert.Len(t, s.Variants, 1)
}

func TestReduceSetLoadingFlagsAreIndependent(t *testing.T) {
	s := newState()

	s = Reduce(s, SetLoading{FlagSaving, true})
	s = Reduce(s, SetLoading{FlagLoadingVariants, true})

	assert.True(t, s.Loading.Saving)
	assert.True(t, s.Loading.LoadingVariants)
	assert.False(t, s.Loading.Loading)
	assert.False(t, s.Loading.LoadingProduct)

	s = Reduce(s, SetLoading{FlagSaving, false})
	assert.False(t, s.Loading.Saving)
	assert.True(t, s.Loading.LoadingVariants)
}

func TestStoreDispatchAppliesInOrder(t *testing.T) {
	st := NewStore()

	name := "A"
	st.Dispatch(
		SetFormData{FormPatch{Name: &name}},
		AddVariant{},
		UpdateVariant{Index: 0, Field: "name", Value: "250g"},
	)

	got := st.State()
	assert.Equal(t, "A", got.Form.Name)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "250g", got.Variants[0].Name)
}
