// Package kindling models the Kindling IR and prints it.
//
// Everything lowers to Value (Text, EscapedText, Number, Identifier, List).
// Headers, actions and arguments produce a List whose first element names the
// node kind, followed by fields in a fixed order. Absent optional fields are
// left out, never printed as placeholders.
//
// Emit is the only printer:
//
//	Emit(List{Identifier("a"), Number(1)}) == "( a 1 )"
//	Emit(List{})                           == "( )"
package kindling
