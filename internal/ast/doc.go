// Package ast holds the parsed RL syntax tree.
//
// Every grammar category is a closed sum type: an interface with an unexported
// marker method plus a Kind tag for switch dispatch. Nodes own their children
// exclusively; the tree has no sharing and no back references. The scoper
// builds its own layer on top and references these nodes, never the other way.
package ast
