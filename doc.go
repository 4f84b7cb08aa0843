/*
Package exprtree translates expression graphs of a relational first-order logic
into homogenous trees, suitable for structural comparison.

Model finders for relational logic produce heterogenous expression graphs:
quantifiers, set and relation operators, signatures, fields and calls to
functions or predicates, each with its own shape. For comparing two expressions
by tree edit distance, we prefer a homogenous tree, i.e. one where the structure
of all nodes is identical. Package structure is as follows:

■ expr: Package expr defines the closed set of expression graph variants.

■ build: Package build converts an expression graph into a homogenous tree.

■ scope: Package scope tracks quantifier declarations during tree construction.

■ canon: Package canon brings trees into a canonical order for commutative operators.

■ ted: Package ted parses the canonical bracket notation and computes tree edit distances.

■ exprlang: Package exprlang implements a textual s-expression notation for expression graphs.

■ scanner: Package scanner provides a lexmachine based tokenizer for the notations above.

The base package contains the tree node type and its serializations, which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprtree
