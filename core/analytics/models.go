package analytics

type (
	MonthCount struct {
		Month string `json:"month"`
		Count int    `json:"count"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	// Stats is the site-wide metrics block backing the analytics dashboard.
	Stats struct {
		TotalUsers         int             `json:"totalUsers"`
		TotalCourses       int             `json:"totalCourses"`
		TotalEnrollments   int             `json:"totalEnrollments"`
		ActiveStudents     int             `json:"activeStudents"`
		CompletionRate     int             `json:"completionRate"` // percent
		Revenue            int             `json:"revenue"`
		MonthlyEnrollments []MonthCount    `json:"monthlyEnrollments"`
		CoursesByCategory  []CategoryCount `json:"coursesByCategory"`
		UserGrowth         []MonthCount    `json:"userGrowth"`
	}

	Repository interface {
		GetStats() (Stats, error)
	}
)
