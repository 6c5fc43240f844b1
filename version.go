package keymap

// BuildDate and BuildEnv identify the build that produced a binary linking
// keymap. Release tooling overrides them with
//
//	go build -ldflags "-X github.com/AndrewDonelson/keymap.BuildDate=<date> -X github.com/AndrewDonelson/keymap.BuildEnv=<env>"
//
// Unset, they describe a local development build.
var (
	BuildDate = "0000.00.00-0000"
	BuildEnv  = "dev"
)

// Version reports BuildDate and BuildEnv joined by a dash.
func Version() string {
	return BuildDate + "-" + BuildEnv
}
