package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"", Null{}},
		{"   ", Null{}},
		{"\t", Null{}},
		{"true", Bool(true)},
		{"FALSE", Bool(false)},
		{"True", Bool(true)},
		{" false ", Bool(false)},
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"+3", Int(3)},
		{"007", Int(7)},
		{"9223372036854775807", Int(9223372036854775807)},
		{"9223372036854775808", Float(9223372036854775808)},
		{"1.5", Float(1.5)},
		{"-0.25", Float(-0.25)},
		{".5", Float(0.5)},
		{"5.", Float(5)},
		{"1e3", Float(1000)},
		{"2.5E-1", Float(0.25)},
		{"1,000", String("1,000")},
		{"1_000", String("1_000")},
		{"0x10", String("0x10")},
		{"NaN", String("NaN")},
		{"Inf", String("Inf")},
		{"infinity", String("infinity")},
		{"1e400", String("1e400")},
		{"1e", String("1e")},
		{".", String(".")},
		{"-", String("-")},
		{"yes", String("yes")},
		{"1", Int(1)},
		{"  Tokyo  ", String("Tokyo")},
		{"truest", String("truest")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.in))
		})
	}
}

func TestInfer_IntegerBeatsFloat(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789", "-2147483649"} {
		v := Infer(s)
		assert.Equal(t, KindInt, v.Kind(), "input %q", s)
	}
}

func TestInfer_BlankIsAlwaysNull(t *testing.T) {
	for _, s := range []string{"", " ", "  \t ", "\r"} {
		assert.True(t, IsNull(Infer(s)), "input %q", s)
	}
}
