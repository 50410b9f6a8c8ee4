package navigation

// NavMap is the sidebar tree. Group headings use the NonNavigable path
// so they can never be breadcrumb targets themselves.
var NavMap = []Node{
	{
		Title: "Platform Overview",
		Path:  "/dashboard",
	},
	{
		Title: "Gym Management",
		Path:  NonNavigable,
		Children: []Node{
			{Title: "All Gyms", Path: "/gyms/all"},
			{Title: "Create Gym", Path: "/gyms/create"},
			{Title: "Gym Analytics", Path: NonNavigable},
		},
	},
	{
		Title: "User Management",
		Path:  NonNavigable,
		Children: []Node{
			{Title: "All Users", Path: "/users/all"},
		},
	},
	{
		Title: "Consultant Management",
		Path:  NonNavigable,
		Children: []Node{
			{Title: "All Consultants", Path: "/consultants/all"},
		},
	},
	{
		Title: "Platform Analytics",
		Path:  NonNavigable,
	},
	{
		Title: "ML & Data Oversight",
		Path:  NonNavigable,
	},
	{
		Title: "Export & Reporting",
		Path:  NonNavigable,
	},
	{
		Title: "System Tools",
		Path:  NonNavigable,
	},
}
