package types

// Launch is one SpaceX launch as returned by the launchesPast query. JSON tags
// follow the upstream field names so exported props match the API payload.
type Launch struct {
	ID              string     `json:"id"`
	MissionName     string     `json:"mission_name"`
	LaunchDateLocal string     `json:"launch_date_local"`
	LaunchSite      LaunchSite `json:"launch_site"`
	Links           Links      `json:"links"`
	Rocket          Rocket     `json:"rocket"`
}

type LaunchSite struct {
	SiteNameLong string `json:"site_name_long"`
}

// Links are all optional; VideoLink is the card target.
type Links struct {
	ArticleLink  string `json:"article_link"`
	VideoLink    string `json:"video_link"`
	MissionPatch string `json:"mission_patch"`
}

type Rocket struct {
	RocketName string `json:"rocket_name"`
}

// StaticProps is what the build-time loader hands to the page:
// {"props": {"launches": [...]}}.
type StaticProps struct {
	Props PageProps `json:"props"`
}

type PageProps struct {
	Launches []Launch `json:"launches"`
}

func NewStaticProps(launches []Launch) StaticProps {
	if launches == nil {
		launches = []Launch{}
	}
	return StaticProps{Props: PageProps{Launches: launches}}
}
