package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderKeyValueTable(t *testing.T) {
	out := RenderKeyValueTable("SETTING", "VALUE", [][2]string{
		{"Minecraft", "1.20.4"},
		{"Yarn", "1.20.4+build.3"},
	})

	assert.Contains(t, out, "SETTING")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "Minecraft")
	assert.Contains(t, out, "1.20.4+build.3")
}

func TestTable_RowChaining(t *testing.T) {
	out := NewTable("A", "B").Row("1", "2").Row("3", "4").String()
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "4")
}
