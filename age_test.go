/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package age

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// White-box specs for the year arithmetic. The exported function reads
// the system clock, so the concrete scenarios live here against fixed
// years.
var _ = Describe("ageAtYear", func() {

	It("subtracts the birth year from the current year", func() {
		Expect(ageAtYear(2022, 1984)).To(Equal(38))
	})

	It("returns zero when the birth year is the current year", func() {
		Expect(ageAtYear(2022, 2022)).To(Equal(0))
	})

	It("returns a negative age for a birth year in the future", func() {
		Expect(ageAtYear(2022, 2030)).To(Equal(-8))
	})

	Context("across a range of years", func() {
		It("always equals currentYear minus birthYear", func() {
			for currentYear := 1900; currentYear <= 2100; currentYear += 25 {
				for birthYear := 1900; birthYear <= 2100; birthYear += 25 {
					Expect(ageAtYear(currentYear, birthYear)).To(Equal(currentYear - birthYear))
				}
			}
		})
	})
})
