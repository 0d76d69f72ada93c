// Package contact defines the value types of a contact directory entry:
// validated phone numbers, contact names, and the Record that aggregates them.
package contact
