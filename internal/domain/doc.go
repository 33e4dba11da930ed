// Package domain defines the core activity model and its invariants.
//
// An Activity is a named extracurricular offering with fixed metadata and a
// mutable, insertion-ordered participant roster. Signup and Unregister
// enforce roster uniqueness and membership; everything else is data.
package domain
