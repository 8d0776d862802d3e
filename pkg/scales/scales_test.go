package scales_test

import (
	"testing"

	"recipebox/pkg/scales"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, "0lb 0.0oz", scales.Convert(0))
	assert.Equal(t, "0lb 3.5oz", scales.Convert(100))
	assert.Equal(t, "1lb 0.0oz", scales.Convert(453.59237))
	assert.Equal(t, "1lb 1.6oz", scales.Convert(500))
	assert.Equal(t, "2lb 3.3oz", scales.Convert(1000))
}

func TestPoundsOunces(t *testing.T) {
	pounds, ounces := scales.PoundsOunces(1000)
	assert.Equal(t, int64(2), pounds)
	assert.InDelta(t, 3.27, ounces, 0.01)

	pounds, ounces = scales.PoundsOunces(453.59237)
	assert.Equal(t, int64(1), pounds)
	assert.InDelta(t, 0.0, ounces, 0.0001)
}
