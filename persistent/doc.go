/*
Package persistent is the home of immutable persistent data structures.

A persistent data structure is immutable once constructed: every "modifying"
operation returns a new value and leaves the receiver untouched. Persistence
comes from structural sharing — a new value reuses, by reference, the
unmodified parts of the value it was derived from instead of copying them.
Making derived copies is therefore cheap in both space and time, and any
value may be shared freely between concurrent readers without coordination.

The single foundational structure here is the singly linked list in package
list; package queue and package stack derive their structures from it and
share its cells.
*/
package persistent
