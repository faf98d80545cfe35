package log

const (
	// FldFile is the name of the log field for storing file name information
	FldFile = "file"
	// FldPath is the name of the log field for storing path name information
	FldPath = "path"
	// FldTransport is the name of the log field for storing a transport name
	FldTransport = "transport"
	// FldSession is the name of the log field for storing the session ID
	FldSession = "session"
	// FldUser is the name of the log field for storing the ID of the currently active user
	FldUser = "user"
	// FldTournament is the name of the log field for storing a tournament ID
	FldTournament = "tournament"
	// FldMenuItem is the name of the log field for storing a menu item ID
	FldMenuItem = "menuItem"
	// FldBanner is the name of the log field for storing a banner ID
	FldBanner = "banner"
	// FldChampion is the name of the log field for storing a hall of fame entry ID
	FldChampion = "champion"
	// FldVersion is the version number of the application
	FldVersion = "ver"
	// FldIP is the IP address used in the log entry
	FldIP = "ip"
	// FldID is the ID of an entity used in the log entry
	FldID = "id"
	// FldSearch is a search term used in a serach
	FldSearch = "search"
	// FldOffset is the requested offset value in a search
	FldOffset = "offset"
	// FldLimit is the requested result limit in a search
	FldLimit = "limit"
	// FldSource tells where a schedule snapshot came from
	FldSource = "source"
	// FldSurface is the name of the page area a featured tournament is selected for
	FldSurface = "surface"
	// FldCount is the number of entities handled
	FldCount = "count"
	// FldDate is a calendar date used in the log entry
	FldDate = "date"
	// FldDuration is the time an operation took
	FldDuration = "took"
	// FldImageType is the type of a site image
	FldImageType = "imageType"
)
