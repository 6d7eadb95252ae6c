package services

import (
	"testing"

	"matka/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPanna(t *testing.T) {
	cases := []struct {
		pattern string
		want    BetKind
	}{
		{"111", KindTriplePatti},
		{"000", KindTriplePatti},
		{"112", KindDoublePatti},
		{"121", KindDoublePatti},
		{"211", KindDoublePatti},
		{"122", KindDoublePatti},
		{"123", KindSinglePatti},
		{"190", KindSinglePatti},
		{"12", KindInvalid},
		{"1234", KindInvalid},
		{"12a", KindInvalid},
		{"", KindInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(models.BetFamilyPanna, tc.pattern))
		})
	}
}

func TestClassifySingleAndJodi(t *testing.T) {
	assert.Equal(t, KindSingle, Classify(models.BetFamilySingle, "6"))
	assert.Equal(t, KindSingle, Classify(models.BetFamilySingle, "0"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilySingle, "66"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilySingle, "x"))

	assert.Equal(t, KindJodi, Classify(models.BetFamilyJodi, "65"))
	assert.Equal(t, KindJodi, Classify(models.BetFamilyJodi, "00"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyJodi, "6"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyJodi, "655"))
}

func TestClassifyHalfSangamFormats(t *testing.T) {
	assert.Equal(t, KindHalfSangamA, Classify(models.BetFamilyHalfSangam, "123-5"))
	assert.Equal(t, KindHalfSangamB, Classify(models.BetFamilyHalfSangam, "5-123"))

	// Equal-length halves satisfy neither format.
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyHalfSangam, "123-456"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyHalfSangam, "5-6"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyHalfSangam, "123-56"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyHalfSangam, "1235"))
}

func TestClassifyFullSangam(t *testing.T) {
	assert.Equal(t, KindFullSangam, Classify(models.BetFamilyFullSangam, "123-456"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyFullSangam, "123-45"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyFullSangam, "12-456"))
	assert.Equal(t, KindInvalid, Classify(models.BetFamilyFullSangam, "123456"))
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, KindDoublePatti, Classify(models.BetFamilyPanna, "112"))
	}
}

func TestRateFamily(t *testing.T) {
	assert.Equal(t, models.RateFamilySingle, KindSingle.RateFamily())
	assert.Equal(t, models.RateFamilyJodi, KindJodi.RateFamily())
	assert.Equal(t, models.RateFamilyTriplePatti, KindTriplePatti.RateFamily())
	assert.Equal(t, models.RateFamilyHalfSangam, KindHalfSangamA.RateFamily())
	assert.Equal(t, models.RateFamilyHalfSangam, KindHalfSangamB.RateFamily())
	assert.Equal(t, models.RateFamilyFullSangam, KindFullSangam.RateFamily())
	// Invalid kinds still resolve to a rate key; they never pay anyway.
	assert.Equal(t, models.RateFamilySinglePatti, KindInvalid.RateFamily())
}
