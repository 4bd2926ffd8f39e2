package models

// MostLikedProject is the single project with the largest like set.
type MostLikedProject struct {
	Title  string `json:"title"`
	Likes  int    `json:"likes"`
	Author string `json:"author"`
}

// TopRatedProject is one entry of the top-5-by-average list.
type TopRatedProject struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
	Author string  `json:"author"`
}

// TagCount is one bucket of the tag frequency histogram.
type TagCount struct {
	Tag   string `json:"tag" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// Analytics is the full rollup, computed fresh on every call.
type Analytics struct {
	TotalProjects    int64             `json:"totalProjects"`
	TotalUsers       int64             `json:"totalUsers"`
	TotalComments    int64             `json:"totalComments"`
	MostLikedProject *MostLikedProject `json:"mostLikedProject"`
	TopRatedProjects []TopRatedProject `json:"topRatedProjects"`
	PopularTags      []TagCount        `json:"popularTags"`
}
