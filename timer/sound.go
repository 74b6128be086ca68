package timer

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/kballard/go-shellquote"

	"github.com/zhye/tomato/internal/apperr"
	"github.com/zhye/tomato/internal/config"
	"github.com/zhye/tomato/internal/engine"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format",
}

// notify sends a desktop notification and plays the transition sound
// for the phase being entered.
func (t *Timer) notify(prev, next engine.Phase) {
	if !t.Opts.Notifications.Enabled {
		return
	}

	title := "Break is over"
	if prev == engine.Work {
		title = "Work session is finished"
	}

	msg := t.Opts.Message(next)

	if err := beeep.Notify(title, msg, ""); err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}

	sound := t.Opts.Sound(next)
	if sound == "" {
		return
	}

	if err := playSound(sound); err != nil {
		slog.Error("unable to play sound", slog.Any("error", err))
	}
}

// playSound decodes and plays a sound file to completion.
func playSound(sound string) error {
	stream, format, err := prepSoundStream(sound)
	if err != nil {
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()
	speaker.Close()

	return nil
}

// prepSoundStream returns an audio stream for the specified sound.
// Bare names resolve to OGG files in the sounds directory; anything
// with an extension is treated as a path.
func prepSoundStream(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	path := sound
	if filepath.Ext(path) == "" {
		path = filepath.Join(config.SoundsDirPath(), path+".ogg")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	// the returned stream owns f and closes it
	switch filepath.Ext(path) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	if err = stream.Seek(0); err != nil {
		return nil, format, err
	}

	return stream, format, nil
}

// runSessionCmd executes the configured post-session command.
func runSessionCmd(sessionCmd string) error {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
