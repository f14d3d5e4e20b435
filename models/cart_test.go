package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemSameLine(t *testing.T) {
	base := CartItem{
		ID:            "a",
		ProductID:     "1",
		SelectedColor: "Black",
		SelectedSize:  "M",
		PrintLocation: "front",
	}

	same := base
	same.ID = "b"
	same.Quantity = 5
	assert.True(t, base.SameLine(same), "id and quantity do not distinguish lines")

	differentSize := base
	differentSize.SelectedSize = "L"
	assert.False(t, base.SameLine(differentSize))

	differentPrint := base
	differentPrint.PrintLocation = "both"
	assert.False(t, base.SameLine(differentPrint))
}

func TestValidCustomOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in-progress", "completed", "cancelled"} {
		assert.True(t, ValidCustomOrderStatus(s), s)
	}
	for _, s := range []string{"", "shipped", "Pending", "done"} {
		assert.False(t, ValidCustomOrderStatus(s), s)
	}
}
