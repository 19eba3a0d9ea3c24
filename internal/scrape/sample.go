// Copyright Arbor Learning Co., 2026. All rights reserved.

package scrape

import "github.com/arborlearn/coursegraph/pkg/types"

// SampleCourses returns a small seed catalog used when live discovery
// yields nothing, so the graph and stats stages stay exercisable
// offline. Published is false: these records were not fetched.
func SampleCourses() []types.Course {
	return []types.Course{
		{
			ID:            "18.01",
			Title:         "Single Variable Calculus",
			URL:           "https://ocw.mit.edu/courses/18-01-single-variable-calculus-fall-2006/",
			Department:    "Mathematics",
			Level:         "Undergraduate",
			Prerequisites: []string{},
			Corequisites:  []string{},
		},
		{
			ID:            "18.02",
			Title:         "Multivariable Calculus",
			URL:           "https://ocw.mit.edu/courses/18-02-multivariable-calculus-fall-2007/",
			Department:    "Mathematics",
			Level:         "Undergraduate",
			Prerequisites: []string{"18.01"},
			Corequisites:  []string{},
		},
		{
			ID:            "6.042",
			Title:         "Mathematics for Computer Science",
			URL:           "https://ocw.mit.edu/courses/6-042j-mathematics-for-computer-science-fall-2010/",
			Department:    "Electrical Engineering and Computer Science",
			Level:         "Undergraduate",
			Prerequisites: []string{},
			Corequisites:  []string{},
		},
		{
			ID:            "6.006",
			Title:         "Introduction to Algorithms",
			URL:           "https://ocw.mit.edu/courses/6-006-introduction-to-algorithms-fall-2011/",
			Department:    "Electrical Engineering and Computer Science",
			Level:         "Undergraduate",
			Prerequisites: []string{"6.042"},
			Corequisites:  []string{},
		},
		{
			ID:            "6.046",
			Title:         "Design and Analysis of Algorithms",
			URL:           "https://ocw.mit.edu/courses/6-046j-design-and-analysis-of-algorithms-spring-2015/",
			Department:    "Electrical Engineering and Computer Science",
			Level:         "Undergraduate",
			Prerequisites: []string{"6.006"},
			Corequisites:  []string{},
		},
	}
}
