/*
Package expr defines the expression graphs of a relational first-order logic,
as produced by model finding tools after type resolution.

Expression graphs are heterogenous: every kind of node has its own shape and
accessors. The set of variants is closed. Clients construct graphs from the
exported struct types, but cannot add variants of their own. Node kinds
unknown to this package may be carried by Other, which records a foreign kind
tag and a string form.

Type information is consumed as-is: a variable carries the string form of its
resolved type, including the surrounding brackets of the type notation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr
