package renderer

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/richinsley/gobezier/canvas"
	"github.com/richinsley/gobezier/graphics"
	"github.com/richinsley/gobezier/logging"
	"github.com/richinsley/gobezier/options"
	"github.com/richinsley/gobezier/scene"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const numBuffers = 4

var errEncoderStopped = errors.New("encoder stopped early")

// EventSource supplies the input for each recorded frame.
type EventSource interface {
	PollEvents() []graphics.Event
}

// Frame is one captured RGBA frame.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// OffscreenRenderer records a scene to a video file without a window.
type OffscreenRenderer struct {
	canvas *canvas.Canvas
	scene  *scene.Scene
}

func NewOffscreenRenderer(c *canvas.Canvas, s *scene.Scene) *OffscreenRenderer {
	return &OffscreenRenderer{canvas: c, scene: s}
}

// RenderFrame draws the scene and returns a copy of the canvas, then applies
// the frame's events. quit is set when an event asked to stop.
func (or *OffscreenRenderer) RenderFrame(src EventSource) (pixels []byte, quit bool) {
	or.scene.Draw(or.canvas)
	pixels = slices.Clone(or.canvas.Pixels())
	return pixels, or.scene.HandleEvents(src.PollEvents())
}

func (or *OffscreenRenderer) getArgs(opts *options.EditorOptions) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	width, height := or.canvas.Size()
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", width, height),
		"r":       fmt.Sprint(*opts.FPS),
	}

	hevc := *opts.Codec == "hevc"
	outputArgs = ffmpeg.KwArgs{"pix_fmt": "yuv420p"}
	switch runtime.GOOS {
	case "darwin":
		if hevc {
			outputArgs["c:v"] = "hevc_videotoolbox"
		} else {
			outputArgs["c:v"] = "h264_videotoolbox"
		}
		outputArgs["b:v"] = "8M"
	default:
		if hevc {
			outputArgs["c:v"] = "libx265"
		} else {
			outputArgs["c:v"] = "libx264"
		}
		outputArgs["crf"] = "18"
	}

	if hevc && strings.HasSuffix(*opts.OutputFile, ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

// writeFrames copies every frame to w in order and returns how many were
// written. It stops at the first write error.
func writeFrames(w io.Writer, frames <-chan *Frame) (int, error) {
	n := 0
	for frame := range frames {
		if _, err := w.Write(frame.Pixels); err != nil {
			return n, fmt.Errorf("failed to write frame %d: %w", frame.PTS, err)
		}
		n++
	}
	return n, nil
}

// runEncoder is the consumer. It starts FFmpeg reading raw frames on stdin
// and feeds it from frameChan until the channel is closed.
func (or *OffscreenRenderer) runEncoder(opts *options.EditorOptions, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := or.getArgs(opts)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if FFmpeg exits before reading everything.
		pipeReader.CloseWithError(errEncoderStopped)
		errc <- err
	}()

	n, writeErr := writeFrames(pipeWriter, frameChan)
	pipeWriter.Close()
	runErr := <-errc
	logging.Logger().Debug("encoder finished", "frames", n, "error", runErr)

	switch {
	case runErr != nil:
		doneChan <- fmt.Errorf("ffmpeg failed: %w", errors.Join(runErr, writeErr))
	case writeErr != nil:
		doneChan <- writeErr
	default:
		doneChan <- nil
	}
}

// RunOffscreen is the producer. It renders duration*fps frames, applying src's
// events as it goes, and waits for the encoder to finalize the file. A quit
// event ends the recording early.
func (or *OffscreenRenderer) RunOffscreen(opts *options.EditorOptions, src EventSource) error {
	log := logging.Logger()
	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	if totalFrames <= 0 {
		return fmt.Errorf("nothing to record: duration %gs at %d fps", *opts.Duration, *opts.FPS)
	}
	log.Info("starting in record mode", "frames", totalFrames, "output", *opts.OutputFile)

	frameChan := make(chan *Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)
	go or.runEncoder(opts, frameChan, encoderDoneChan)

	for i := range totalFrames {
		pixels, quit := or.RenderFrame(src)
		select {
		case frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}:
		case err := <-encoderDoneChan:
			close(frameChan)
			if err == nil {
				err = errEncoderStopped
			}
			return fmt.Errorf("recording stopped at frame %d: %w", i, err)
		}
		if quit {
			log.Info("quit event, ending recording", "frame", i)
			break
		}
	}

	close(frameChan)
	return <-encoderDoneChan
}
