package node

// ProductFeatures references a feature system group and carries the customs
// extension fields used by downstream import tools.
type ProductFeatures struct {
	referenceFeatureSystemName Value[string]
	referenceFeatureGroupName  Value[string]
	referenceFeatureGroupID    Value[string]
	features                   []*Feature

	serialNumberRequired   Value[bool]
	customsTariffNumber    Value[string]
	customsCountryOfOrigin Value[string]
	customsTariffText      Value[string]
}

// SetReferenceFeatureSystemName names the classification system, e.g.
// "ECLASS-5.1".
func (f *ProductFeatures) SetReferenceFeatureSystemName(v string) {
	f.referenceFeatureSystemName = Of(v)
}

// ReferenceFeatureSystemName returns the system name and whether it is set.
func (f *ProductFeatures) ReferenceFeatureSystemName() (string, bool) {
	return f.referenceFeatureSystemName.Get()
}

// SetReferenceFeatureGroupName names the group within the system.
func (f *ProductFeatures) SetReferenceFeatureGroupName(v string) {
	f.referenceFeatureGroupName = Of(v)
}

// ReferenceFeatureGroupName returns the group name and whether it is set.
func (f *ProductFeatures) ReferenceFeatureGroupName() (string, bool) {
	return f.referenceFeatureGroupName.Get()
}

// SetReferenceFeatureGroupID sets the group identifier within the system.
func (f *ProductFeatures) SetReferenceFeatureGroupID(v string) {
	f.referenceFeatureGroupID = Of(v)
}

// ReferenceFeatureGroupID returns the group id and whether it is set.
func (f *ProductFeatures) ReferenceFeatureGroupID() (string, bool) {
	return f.referenceFeatureGroupID.Get()
}

// AddFeature appends a single feature value. Nil values are ignored.
func (f *ProductFeatures) AddFeature(v *Feature) {
	if v != nil {
		f.features = append(f.features, v)
	}
}

// Features returns a copy of the feature values in insertion order.
func (f *ProductFeatures) Features() []*Feature { return append([]*Feature(nil), f.features...) }

// SetSerialNumberRequired marks whether the article ships with a serial number.
func (f *ProductFeatures) SetSerialNumberRequired(v bool) { f.serialNumberRequired = Of(v) }
func (f *ProductFeatures) SerialNumberRequired() (bool, bool) { return f.serialNumberRequired.Get() }

// SetCustomsTariffNumber sets the customs tariff code.
func (f *ProductFeatures) SetCustomsTariffNumber(v string) { f.customsTariffNumber = Of(v) }
func (f *ProductFeatures) CustomsTariffNumber() (string, bool) { return f.customsTariffNumber.Get() }

// SetCustomsCountryOfOrigin sets the ISO 3166 country of origin.
func (f *ProductFeatures) SetCustomsCountryOfOrigin(v string) { f.customsCountryOfOrigin = Of(v) }
func (f *ProductFeatures) CustomsCountryOfOrigin() (string, bool) {
	return f.customsCountryOfOrigin.Get()
}

// SetCustomsTariffText sets the tariff description.
func (f *ProductFeatures) SetCustomsTariffText(v string) { f.customsTariffText = Of(v) }
func (f *ProductFeatures) CustomsTariffText() (string, bool) { return f.customsTariffText.Get() }

func (*ProductFeatures) NodeName() string { return "PRODUCT_FEATURES" }
func (*ProductFeatures) Attributes() []Attr { return nil }

func (f *ProductFeatures) Members() []Member {
	return []Member{
		scalar("REFERENCE_FEATURE_SYSTEM_NAME", f.referenceFeatureSystemName),
		scalar("REFERENCE_FEATURE_GROUP_NAME", f.referenceFeatureGroupName),
		scalar("REFERENCE_FEATURE_GROUP_ID", f.referenceFeatureGroupID),
		list("FEATURE", f.features),
		scalar("SERIAL_NUMBER_REQUIRED", f.serialNumberRequired),
		scalar("CUSTOMS_TARIFF_NUMBER", f.customsTariffNumber),
		scalar("CUSTOMS_COUNTRY_OF_ORIGIN", f.customsCountryOfOrigin),
		scalar("CUSTOMS_TARIFF_TEXT", f.customsTariffText),
	}
}

// Feature is a single named feature value.
type Feature struct {
	name  Value[string]
	value Value[string]
	unit  Value[string]
}

// SetName sets the feature name.
func (f *Feature) SetName(v string) { f.name = Of(v) }
func (f *Feature) Name() (string, bool) { return f.name.Get() }

// SetValue sets the feature value as text.
func (f *Feature) SetValue(v string) { f.value = Of(v) }
func (f *Feature) Value() (string, bool) { return f.value.Get() }

// SetUnit sets the unit of the value, if any.
func (f *Feature) SetUnit(v string) { f.unit = Of(v) }
func (f *Feature) Unit() (string, bool) { return f.unit.Get() }

func (*Feature) NodeName() string { return "FEATURE" }
func (*Feature) Attributes() []Attr { return nil }

func (f *Feature) Members() []Member {
	return []Member{
		scalar("FNAME", f.name),
		scalar("FVALUE", f.value),
		scalar("FUNIT", f.unit),
	}
}
