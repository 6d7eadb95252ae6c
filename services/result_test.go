package services

import (
	"fmt"
	"testing"

	"matka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastDigit(t *testing.T) {
	cases := []struct {
		number string
		want   int
	}{
		{"123", 6},
		{"456", 5},
		{"000", 0},
		{"999", 7},
		{"190", 0},
		{"550", 0},
	}
	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			assert.Equal(t, tc.want, LastDigit(tc.number))
			assert.Equal(t, DigitSum(tc.number)%10, LastDigit(tc.number))
		})
	}
}

func TestLastDigitIsAlwaysOneDigit(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := fmt.Sprintf("%03d", i)
		d := LastDigit(n)
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 9)
	}
}

func TestMiddleDigits(t *testing.T) {
	t.Run("opening only", func(t *testing.T) {
		got := MiddleDigits("123", "")
		require.NotNil(t, got)
		assert.Equal(t, "6*", *got)
	})

	t.Run("both declared", func(t *testing.T) {
		got := MiddleDigits("123", "456")
		require.NotNil(t, got)
		assert.Equal(t, "65", *got)
	})

	t.Run("invalid closing stays wildcard", func(t *testing.T) {
		got := MiddleDigits("123", "45")
		require.NotNil(t, got)
		assert.Equal(t, "6*", *got)
	})

	t.Run("invalid opening", func(t *testing.T) {
		assert.Nil(t, MiddleDigits("12", "456"))
		assert.Nil(t, MiddleDigits("", "456"))
	})
}

func str(s string) *string { return &s }

func TestDisplayResultStandard(t *testing.T) {
	m := &models.Market{Name: "kalyan", Kind: models.MarketKindStandard}
	assert.Equal(t, "***-**-***", DisplayResult(m))

	m.OpeningNumber = str("123")
	assert.Equal(t, "123-6*-***", DisplayResult(m))

	m.ClosingNumber = str("456")
	assert.Equal(t, "123-65-456", DisplayResult(m))
}

func TestDisplayResultSingleDraw(t *testing.T) {
	m := &models.Market{Name: "starline", Kind: models.MarketKindSingleDraw}
	assert.Equal(t, "*** - *", DisplayResult(m))

	m.OpeningNumber = str("190")
	assert.Equal(t, "190 - 0", DisplayResult(m))
}

func TestDisplayResultNeverLeaksClosingBeforeOpening(t *testing.T) {
	// A closing number without a valid opening must stay hidden.
	m := &models.Market{
		Name:          "kalyan",
		Kind:          models.MarketKindStandard,
		ClosingNumber: str("456"),
	}
	assert.Equal(t, "***-**-***", DisplayResult(m))

	m.OpeningNumber = str("1x3")
	assert.Equal(t, "***-**-***", DisplayResult(m))
}
