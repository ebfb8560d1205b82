// Package resume holds the resume data model and the shared store that form
// components read from and write to.
//
// Components never mutate a Resume directly. They read values through a Store
// and request partial updates of exactly one named field with SetField; the
// store serialises writes and notifies subscribers after each change.
package resume
