/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package age is the worked example of the test-driven development
// walkthrough in the README. The whole public surface is one function;
// the specs next to this file were written first and drove it into
// existence.
package age

import (
	"time"
)

// CurrentAgeForBirthYear returns the age, in whole calendar years, of a
// person born in birthYear. The result is computed against the system
// clock at call time. Any integer is accepted; a birth year in the
// future simply yields a negative age.
func CurrentAgeForBirthYear(birthYear int) int {
	return ageAtYear(time.Now().Year(), birthYear)
}

// ageAtYear holds the arithmetic behind CurrentAgeForBirthYear. Keeping
// it separate from the clock read lets the specs pin down concrete
// years without faking time.
func ageAtYear(currentYear, birthYear int) int {
	return currentYear - birthYear
}
