package mail

type ReminderEmailData struct {
	ContactName string
	Frequency   string
	Notes       string
}
