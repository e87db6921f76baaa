/*
Package zerkel is an interpreter and program-enumeration engine for a minimal
functional language whose sole data type is the hereditarily finite pure set.

A program is a closed term built from a handful of primitive combinators
(empty set, identity, adjunction, conditional membership, projection,
composition, primitive recursion, and membership dispatch). Given such a term
and a tuple of set arguments matching its arity, the interpreter produces the
unique set the term denotes. Package structure is as follows:

■ hfset: Package hfset implements hereditarily finite pure sets: interning,
structural equality, rank, ordinal recognition, canonical order and printing.

■ term: Package term implements the abstract syntax of the term language:
interned nodes for the primitive combinators, and a semantic analyser that
validates arity invariants.

■ lang: Package lang parses program text into term.Node trees, including a
library of macro combinators expanded to primitives.

■ eval: Package eval implements the lazy, stack-driven, memoising evaluator
and its observer protocol.

■ enum: Package enum enumerates well-formed terms of a given size and arity,
modulo a blacklist of known equivalences.

The base package contains data types which are used throughout the other
packages.
*/
package zerkel
