// Package progression holds the lesson sequencing rules of a course.
//
// Every function here is pure: the viewer's completed set is passed in explicitly and
// nothing is read from or written to a store. Lessons are always expected in global
// order (ascending Position, no ties).
package progression
