package model

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type LeaderboardEntry struct {
	Rank            int    `json:"rank"`
	UserID          string `json:"userId"`
	Role            string `json:"role"`
	Progress        int    `json:"progress"`
	BadgeCount      int    `json:"badgeCount"`
	CompletedTopics int    `json:"completedTopics"`
}

type Analytics struct {
	TotalUsersStarted         int         `json:"totalUsersStarted"`
	TotalAssessmentsCompleted int         `json:"totalAssessmentsCompleted"`
	AverageScore              int         `json:"averageScore"`
	MostPopularRoles          []RoleCount `json:"mostPopularRoles"`
	TopRoles                  []RoleCount `json:"topRoles"`
	TotalUsers                int         `json:"totalUsers"`
}
