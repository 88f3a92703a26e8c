// Package vdfbinary parses Valve's binary VDF format.
//
// This is a vendored and modified version of github.com/TimDeve/valve-vdf-binary
// Licensed under MIT. See LICENSE file in this directory.
package vdfbinary

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Shortcut represents a Steam non-Steam game shortcut.
// Fields are ordered for optimal memory alignment.
type Shortcut struct {
	AppName  string
	Exe      string
	StartDir string
	AppID    uint32
	IsHidden bool
}

// RunGameID returns the 64-bit id Steam accepts in steam://rungameid/ for
// a shortcut: (AppID << 32) | 0x02000000.
func (s Shortcut) RunGameID() string {
	return strconv.FormatUint((uint64(s.AppID)<<32)|0x02000000, 10)
}

// ProcessName returns the file name of the shortcut target, which is what
// shows up in the process list once the shortcut is running.
func (s Shortcut) ProcessName() string {
	exe := strings.Trim(strings.TrimSpace(s.Exe), `"`)
	if exe == "" {
		return ""
	}
	// shortcuts.vdf always stores Windows paths on Windows hosts, so split on
	// both separators regardless of the platform doing the parsing
	if i := strings.LastIndexAny(exe, `\/`); i >= 0 {
		exe = exe[i+1:]
	}
	return exe
}

// ParseShortcuts parses Steam's shortcuts.vdf binary format.
// Fields other than appid, AppName and Exe are treated as optional to
// handle shortcuts created by third-party tools like EmuDeck/Lutris.
func ParseShortcuts(buf io.Reader) ([]Shortcut, error) {
	vdf, err := Parse(buf)
	if err != nil {
		return []Shortcut{}, err
	}

	shortcutsMap, ok := vdf.GetMap("shortcuts")
	if !ok {
		return []Shortcut{}, errors.New("could not find 'shortcuts' in parsed vdf")
	}

	shortcuts := make([]Shortcut, len(shortcutsMap))

	for i := range shortcuts {
		s, ok := shortcutsMap[strconv.Itoa(i)]
		if !ok {
			return []Shortcut{}, errors.New("vdf that should be an array does not have the corresponding index")
		}

		appID, ok := s.GetUint("appid")
		if !ok {
			return []Shortcut{}, errors.New("could not get key 'appid' for one of the shortcuts")
		}

		appName, ok := s.GetString("AppName")
		if !ok {
			return []Shortcut{}, errors.New("could not get key 'AppName' for one of the shortcuts")
		}

		exe, ok := s.GetString("Exe")
		if !ok {
			return []Shortcut{}, errors.New("could not get key 'Exe' for one of the shortcuts")
		}

		startDir, _ := s.GetString("StartDir")
		isHidden, _ := s.GetBool("IsHidden")

		shortcuts[i] = Shortcut{
			AppID:    appID,
			AppName:  appName,
			Exe:      exe,
			IsHidden: isHidden,
			StartDir: startDir,
		}
	}

	return shortcuts, nil
}
