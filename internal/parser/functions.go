package parser

import "github.com/sxgraph/sxgraph/pkg/sx"

type function struct {
	arity int
	build func(args []sx.Expr) sx.Expr
}

// functions maps callable names onto the operator table. abs/fabs and
// mod/fmod are aliases.
var functions = map[string]function{
	"sin":    {1, func(a []sx.Expr) sx.Expr { return a[0].Sin() }},
	"cos":    {1, func(a []sx.Expr) sx.Expr { return a[0].Cos() }},
	"tan":    {1, func(a []sx.Expr) sx.Expr { return a[0].Tan() }},
	"asin":   {1, func(a []sx.Expr) sx.Expr { return a[0].Asin() }},
	"acos":   {1, func(a []sx.Expr) sx.Expr { return a[0].Acos() }},
	"atan":   {1, func(a []sx.Expr) sx.Expr { return a[0].Atan() }},
	"sinh":   {1, func(a []sx.Expr) sx.Expr { return a[0].Sinh() }},
	"cosh":   {1, func(a []sx.Expr) sx.Expr { return a[0].Cosh() }},
	"tanh":   {1, func(a []sx.Expr) sx.Expr { return a[0].Tanh() }},
	"asinh":  {1, func(a []sx.Expr) sx.Expr { return a[0].Asinh() }},
	"acosh":  {1, func(a []sx.Expr) sx.Expr { return a[0].Acosh() }},
	"atanh":  {1, func(a []sx.Expr) sx.Expr { return a[0].Atanh() }},
	"exp":    {1, func(a []sx.Expr) sx.Expr { return a[0].Exp() }},
	"log":    {1, func(a []sx.Expr) sx.Expr { return a[0].Log() }},
	"log10":  {1, func(a []sx.Expr) sx.Expr { return a[0].Log10() }},
	"sqrt":   {1, func(a []sx.Expr) sx.Expr { return a[0].Sqrt() }},
	"sq":     {1, func(a []sx.Expr) sx.Expr { return a[0].Sq() }},
	"inv":    {1, func(a []sx.Expr) sx.Expr { return a[0].Inv() }},
	"abs":    {1, func(a []sx.Expr) sx.Expr { return a[0].Abs() }},
	"fabs":   {1, func(a []sx.Expr) sx.Expr { return a[0].Abs() }},
	"floor":  {1, func(a []sx.Expr) sx.Expr { return a[0].Floor() }},
	"ceil":   {1, func(a []sx.Expr) sx.Expr { return a[0].Ceil() }},
	"sign":   {1, func(a []sx.Expr) sx.Expr { return a[0].Sign() }},
	"erf":    {1, func(a []sx.Expr) sx.Expr { return a[0].Erf() }},
	"erfinv": {1, func(a []sx.Expr) sx.Expr { return a[0].Erfinv() }},

	"pow":          {2, func(a []sx.Expr) sx.Expr { return a[0].Pow(a[1]) }},
	"constpow":     {2, func(a []sx.Expr) sx.Expr { return a[0].ConstPow(a[1]) }},
	"mod":          {2, func(a []sx.Expr) sx.Expr { return a[0].Mod(a[1]) }},
	"fmod":         {2, func(a []sx.Expr) sx.Expr { return a[0].Mod(a[1]) }},
	"fmin":         {2, func(a []sx.Expr) sx.Expr { return a[0].Fmin(a[1]) }},
	"fmax":         {2, func(a []sx.Expr) sx.Expr { return a[0].Fmax(a[1]) }},
	"atan2":        {2, func(a []sx.Expr) sx.Expr { return a[0].Atan2(a[1]) }},
	"copysign":     {2, func(a []sx.Expr) sx.Expr { return a[0].CopySign(a[1]) }},
	"if_else_zero": {2, func(a []sx.Expr) sx.Expr { return a[0].IfElseZero(a[1]) }},

	"if_else": {3, func(a []sx.Expr) sx.Expr { return sx.IfElse(a[0], a[1], a[2]) }},
}
