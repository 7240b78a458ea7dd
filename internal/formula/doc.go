// Package formula turns formula text such as `=(A1+B1)*2` into an abstract
// syntax tree.
//
// The grammar, from lowest to highest precedence:
//
//	Program  := "=" Expr
//	Expr     := Compare
//	Compare  := Concat (("=" | "<>" | ">" | "<" | ">=" | "<=") Concat)*
//	Concat   := Additive ("&" Additive)*
//	Additive := Term (("+" | "-") Term)*
//	Term     := Unary (("*" | "/") Unary)*
//	Unary    := Power ("%")?
//	Power    := Primary ("^" Primary)*
//	Primary  := Number | Bool | Text | Cell | Name | Name "(" [Expr ("," Expr)*] ")"
//	          | "(" Expr ")" | ("+" | "-") Primary
//
// Every node records its Kind and the byte span it covers in the source. The
// tree is immutable once parsed. Ranges (`A1:B2`) and absolute references
// (`$A$1`) are not part of the grammar and fail to parse.
package formula
