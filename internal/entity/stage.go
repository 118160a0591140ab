package entity

// Track identifies one of the two parallel stage groupings on the board.
type Track string

const (
	TrackConnect Track = "connect" // acquisition funnel
	TrackGrow    Track = "grow"    // recurring cadence
)

// Funnel stage identifiers. These strings are stored verbatim in the
// contacts.stage column, so they must not change.
const (
	StageNew           = "New"
	StageContacted     = "Contacted"
	StageMeetingBooked = "Meeting Booked"
	StageCallCompleted = "Call Completed"
	StageFollowUp      = "Follow Up"
)

// Cadence stage identifiers. Each one mirrors a follow-up frequency.
const (
	StageWeekly     = "Weekly"
	StageBiweekly   = "Biweekly"
	StageMonthly    = "Monthly"
	StageQuarterly  = "Quarterly"
	StageSemiannual = "Semiannual"
	StageAnnual     = "Annual"
)

// StageDefinition carries the presentation metadata for one board column.
type StageDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Track       Track  `json:"track"`
}

// Catalog is the immutable set of valid pipeline stages. Build it once with
// NewCatalog and pass it into whatever needs stage validation; there is no
// package-level mutable stage list.
type Catalog struct {
	connect []StageDefinition
	grow    []StageDefinition
	byID    map[string]StageDefinition
}

// NewCatalog returns the standard two-track catalog.
func NewCatalog() *Catalog {
	connect := []StageDefinition{
		{ID: StageNew, Name: "New", Color: "blue", Description: "Recently added contacts", Track: TrackConnect},
		{ID: StageContacted, Name: "Contacted", Color: "yellow", Description: "Initial outreach made", Track: TrackConnect},
		{ID: StageMeetingBooked, Name: "Meeting Booked", Color: "purple", Description: "Scheduled for meeting", Track: TrackConnect},
		{ID: StageCallCompleted, Name: "Call Completed", Color: "green", Description: "First call completed", Track: TrackConnect},
		{ID: StageFollowUp, Name: "Follow Up", Color: "red", Description: "Needs follow-up", Track: TrackConnect},
	}
	grow := []StageDefinition{
		{ID: StageWeekly, Name: "Weekly", Color: "indigo", Description: "Weekly check-ins", Track: TrackGrow},
		{ID: StageBiweekly, Name: "Biweekly", Color: "pink", Description: "Bi-weekly check-ins", Track: TrackGrow},
		{ID: StageMonthly, Name: "Monthly", Color: "orange", Description: "Monthly check-ins", Track: TrackGrow},
		{ID: StageQuarterly, Name: "Quarterly", Color: "teal", Description: "Quarterly check-ins", Track: TrackGrow},
		{ID: StageSemiannual, Name: "Semiannual", Color: "cyan", Description: "6-month check-ins", Track: TrackGrow},
		{ID: StageAnnual, Name: "Annual", Color: "emerald", Description: "Annual check-ins", Track: TrackGrow},
	}

	byID := make(map[string]StageDefinition, len(connect)+len(grow))
	for _, s := range connect {
		byID[s.ID] = s
	}
	for _, s := range grow {
		byID[s.ID] = s
	}

	return &Catalog{connect: connect, grow: grow, byID: byID}
}

// Stages returns the ordered column definitions for the given track. The
// order is stable and is the order columns appear on the board.
func (c *Catalog) Stages(track Track) []StageDefinition {
	var src []StageDefinition
	switch track {
	case TrackConnect:
		src = c.connect
	case TrackGrow:
		src = c.grow
	default:
		return nil
	}
	out := make([]StageDefinition, len(src))
	copy(out, src)
	return out
}

// IsValid reports whether value is a recognized stage on either track.
// Validation is deliberately permissive across tracks: the stored stage
// column only enforces membership in the union, not track-correct moves.
func (c *Catalog) IsValid(value string) bool {
	_, ok := c.byID[value]
	return ok
}

// Lookup returns the definition for a stage identifier.
func (c *Catalog) Lookup(value string) (StageDefinition, bool) {
	def, ok := c.byID[value]
	return def, ok
}

// ValidTrack reports whether track names one of the two board tracks.
func ValidTrack(track Track) bool {
	return track == TrackConnect || track == TrackGrow
}
