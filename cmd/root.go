package cmd

import "io"

type Context struct {
	Debug  bool
	Stdout io.Writer
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve    ServeCmd    `cmd:"" default:"1"                          help:"Run the server"`
	Migrate  MigrateCmd  `cmd:"" help:"Run database migrations"`
	Add      AddCmd      `cmd:"" help:"Log a drink"`
	Update   UpdateCmd   `cmd:"" help:"Change a logged drink"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a logged drink"`
	List     ListCmd     `cmd:"" help:"List logged drinks"`
	Stats    StatsCmd    `cmd:"" help:"Show weekly consumption and statistics"`
	Streak   StreakCmd   `cmd:"" help:"Show how many days in a row you have had a drink"`
	Notes    NotesCmd    `cmd:"" help:"Show the latest notes for a drink"`
	Lookup   LookupCmd   `cmd:"" help:"Look up a beer or brewery online"`
	Truncate TruncateCmd `cmd:"" help:"Delete every logged drink"`
}
