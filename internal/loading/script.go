// Package loading holds the pure parts of the loading screen: the scripted
// boot log, the auto-advancing progress curve, and the glitch bar's blocky
// segmentation. Rendering lives in the ui packages.
package loading

import "time"

// Kind styles a boot log entry.
type Kind int

const (
	KindInfo Kind = iota
	KindCommand
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Entry is one line of the boot log.
type Entry struct {
	Text string
	Kind Kind
}

// Script is an ordered list of boot log entries.
type Script []Entry

// Next returns entry i, or false once the script is exhausted.
func (s Script) Next(i int) (Entry, bool) {
	if i < 0 || i >= len(s) {
		return Entry{}, false
	}
	return s[i], true
}

// Cycle returns entry i mod len(s). Stall logs repeat until loading ends.
func (s Script) Cycle(i int) Entry {
	if len(s) == 0 {
		return Entry{}
	}
	n := i % len(s)
	if n < 0 {
		n += len(s)
	}
	return s[n]
}

const (
	// InitialEntries are shown immediately so the log never starts empty.
	InitialEntries = 9

	BootInterval  = 50 * time.Millisecond
	StallInterval = 400 * time.Millisecond
)

// StallNotice is logged once when loading overruns.
var StallNotice = Entry{Text: "WARNING: Network connection unstable, optimizing for low bandwidth...", Kind: KindWarning}

// Boot is the normal boot sequence.
var Boot = Script{
	{"Initializing system boot sequence...", KindCommand},
	{"Loading kernel modules...", KindInfo},
	{"Checking system integrity...", KindInfo},
	{"Mounting file systems...", KindSuccess},
	{"WARNING: Memory allocation suboptimal", KindWarning},
	{"Neural network interfaces online", KindSuccess},
	{"Quantum encryption protocols active", KindInfo},
	{"ERROR: Failed to connect to remote server", KindError},
	{"Retrying connection...", KindInfo},
	{"Connection established to central mainframe", KindSuccess},
	{"Loading user profile...", KindInfo},
	{"Biometric authentication systems online", KindSuccess},
	{"Activating cyberspace protocols...", KindCommand},
	{"Engaging neural interface drivers...", KindInfo},
	{"Syncing with global network grid...", KindInfo},
	{"Calibrating reality distortion matrix...", KindSuccess},
	{"WARNING: Cybersecurity threats detected", KindWarning},
	{"Activating defense algorithms...", KindInfo},
	{"Checking for system updates...", KindCommand},
	{"Update package verified - applying patches", KindSuccess},
	{"Initializing virtual environment...", KindInfo},
	{"Scanning for malware...", KindCommand},
	{"Firewall rules updated", KindSuccess},
	{"Establishing secure connections...", KindCommand},
	{"VPN tunnels activated", KindInfo},
	{"WARNING: Bandwidth throttling detected", KindWarning},
	{"Optimizing network protocols", KindInfo},
	{"Loading firmware updates...", KindInfo},
	{"Quantum processor online", KindSuccess},
	{"ERROR: Virtual memory fragmentation detected", KindError},
	{"Running memory defragmentation...", KindCommand},
	{"Memory optimization complete", KindSuccess},
	{"Initializing holographic interfaces...", KindInfo},
	{"Calibrating neural feedback loops", KindInfo},
	{"Synchronizing time with atomic clock", KindInfo},
	{"Loading AI assistance modules...", KindCommand},
	{"Personality matrix activated", KindSuccess},
	{"WARNING: High CPU temperature detected", KindWarning},
	{"Activating thermal management protocols...", KindCommand},
	{"Temperature stabilized", KindSuccess},
	{"Analyzing user biometric data...", KindInfo},
	{"Identity confirmed", KindSuccess},
	{"Accessing secure databases...", KindInfo},
	{"Decrypting classified information", KindCommand},
	{"Running final diagnostics...", KindInfo},
	{"All systems operational", KindSuccess},
	{"System ready - Awaiting user command", KindSuccess},
}

// Stall cycles while the loading screen waits on a slow story load.
var Stall = Script{
	{"WARNING: Network latency detected", KindWarning},
	{"Initiating connection retry sequence...", KindCommand},
	{"Optimizing bandwidth allocation", KindCommand},
	{"Checking CDN availability...", KindCommand},
	{"Rerouting through alternate channels", KindCommand},
	{"Requesting reduced payload size", KindCommand},
	{"WARNING: Resource contention detected", KindWarning},
	{"Prioritizing critical system components", KindCommand},
	{"Applying progressive enhancement protocols", KindCommand},
	{"Enabling low-bandwidth optimization mode", KindSuccess},
	{"Compressing data streams", KindCommand},
	{"Analyzing network congestion points", KindCommand},
	{"ERROR: Timeout on primary connection", KindError},
	{"Falling back to secondary connection", KindCommand},
	{"Implementing exponential backoff strategy", KindCommand},
	{"Caching available resources", KindSuccess},
}
