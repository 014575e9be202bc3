package vercomp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type compareCase struct {
	Name               string
	Ver1               string
	Ver2               string
	ExpectedComparable bool
	ExpectedResult     int
}

// generateEqualTestCases generates test cases for equal version comparisons
func generateEqualTestCases(versions []string) []compareCase {
	var testCases []compareCase
	for _, ver := range versions {
		testCases = append(testCases, compareCase{
			Name:               "Compare_" + ver + "_Equals_" + ver,
			Ver1:               ver,
			Ver2:               ver,
			ExpectedComparable: true,
			ExpectedResult:     Equal,
		})
	}
	return testCases
}

// generateLessTestCases generates test cases for less-than version comparisons
func generateLessTestCases(lessPairs [][]string) []compareCase {
	var testCases []compareCase
	for _, pair := range lessPairs {
		ver1, ver2 := pair[0], pair[1]
		testCases = append(testCases, compareCase{
			Name:               "Compare_" + ver1 + "_Less_Than_" + ver2,
			Ver1:               ver1,
			Ver2:               ver2,
			ExpectedComparable: true,
			ExpectedResult:     Less,
		})
	}
	return testCases
}

// generateGreaterTestCases generates test cases for greater-than version comparisons
func generateGreaterTestCases(greaterPairs [][]string) []compareCase {
	var testCases []compareCase
	for _, pair := range greaterPairs {
		ver1, ver2 := pair[0], pair[1]
		testCases = append(testCases, compareCase{
			Name:               "Compare_" + ver1 + "_Greater_Than_" + ver2,
			Ver1:               ver1,
			Ver2:               ver2,
			ExpectedComparable: true,
			ExpectedResult:     Greater,
		})
	}
	return testCases
}

// generateInvalidTestCases generates test cases for invalid version comparisons
func generateInvalidTestCases(invalidPairs [][]string) []compareCase {
	var testCases []compareCase
	for _, pair := range invalidPairs {
		ver1, ver2 := pair[0], pair[1]
		testCases = append(testCases, compareCase{
			Name:               "Compare_" + ver1 + "_Invalid_" + ver2,
			Ver1:               ver1,
			Ver2:               ver2,
			ExpectedComparable: false,
		})
	}
	return testCases
}

func TestVersionComparatorCompare(t *testing.T) {
	equalVersions := []string{
		"1.0.0",
		"1.0.0-beta",
		"v1.0.0",
		"v1.0.0-beta",
		"20250204114023",
		"v20250204114023",
	}

	lessPairs := [][]string{
		{"1.0.0", "1.0.1"},
		{"1.0.0-beta", "1.0.0"},
		{"v1.0.0", "v1.0.1"},
		{"v1.0.0-beta", "v1.0.0"},
		{"20250204114020", "20250204114023"},
		{"v20250204114020", "v20250204114023"},
	}

	greaterPairs := [][]string{
		{"1.0.1", "1.0.0"},
		{"1.0.0", "1.0.0-beta"},
		{"v1.0.1", "v1.0.0"},
		{"v1.0.0", "v1.0.0-beta"},
		{"20250204114023", "20250204114020"},
		{"v20250204114023", "v20250204114020"},
	}

	invalidPairs := [][]string{
		{"1.0.0", "20250204114023"},
		{"v1.0.0", "v20250204114023"},
		{"1.0.0", "not-a-version"},
	}

	var testCases []compareCase
	testCases = append(testCases, generateEqualTestCases(equalVersions)...)
	testCases = append(testCases, generateLessTestCases(lessPairs)...)
	testCases = append(testCases, generateGreaterTestCases(greaterPairs)...)
	testCases = append(testCases, generateInvalidTestCases(invalidPairs)...)

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			comparator := NewComparator()
			ret := comparator.Compare(tc.Ver1, tc.Ver2)
			require.Equal(t, tc.ExpectedComparable, ret.Comparable)
			if tc.ExpectedComparable {
				require.Equal(t, tc.ExpectedResult, ret.Result)
			}
		})
	}
}

func TestVersionComparatorEligible(t *testing.T) {
	testCases := []struct {
		Name         string
		Current      string
		Remote       string
		IncludeMinor bool
		Eligible     bool
		Comparable   bool
	}{
		{"MinorBumpIncluded", "1.2.0", "1.3.0", true, true, true},
		{"MinorBumpSuppressed", "1.2.0", "1.3.0", false, false, true},
		{"PatchBumpSuppressed", "1.2.0", "1.2.1", false, false, true},
		{"MajorBumpAlwaysEligible", "1.2.0", "2.0.0", false, true, true},
		{"MajorBumpIncluded", "1.2.0", "2.0.0", true, true, true},
		{"RemoteOlder", "2.0.0", "1.9.9", true, false, true},
		{"RemoteEqual", "1.2.0", "1.2.0", true, false, true},
		{"VPrefixedTags", "v1.2.0", "v1.3.0", true, true, true},
		{"DateTimeTags", "20250204114020", "20250204114023", false, true, true},
		{"MixedSchemes", "1.2.0", "20250204114023", true, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			comparator := NewComparator()
			eligible, comparable := comparator.Eligible(tc.Current, tc.Remote, tc.IncludeMinor)
			require.Equal(t, tc.Comparable, comparable)
			require.Equal(t, tc.Eligible, eligible)
		})
	}
}
