package scene

import (
	"fmt"
	"time"

	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/gesture"
)

type StubClock struct {
	now time.Time
}

func NewStubClock() *StubClock {
	return &StubClock{now: time.Date(2022, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *StubClock) Now() time.Time {
	return s.now
}

func (s *StubClock) Advance(duration time.Duration) {
	s.now = s.now.Add(duration)
}

// RecordingListener logs every callback to a log shared between listeners
// so that the delivery order can be asserted.
type RecordingListener struct {
	name   string
	handle bool
	stop   bool
	log    *[]string
	events []*InputEvent

	lastX, lastY float32
	updates      int
	cancels      int
}

func NewRecordingListener(name string, handle bool, log *[]string) *RecordingListener {
	return &RecordingListener{name: name, handle: handle, log: log}
}

func (s *RecordingListener) record(event *InputEvent, x, y float32) {
	*s.log = append(*s.log, fmt.Sprintf("%s:%s", s.name, event.Type))
	s.events = append(s.events, event)
	s.lastX = x
	s.lastY = y
	if s.stop {
		event.Stop()
	}
}

func (s *RecordingListener) TouchDown(event *InputEvent, x, y float32, pointer, button int) bool {
	s.record(event, x, y)
	return s.handle
}

func (s *RecordingListener) TouchUp(event *InputEvent, x, y float32, pointer, button int) {
	s.record(event, x, y)
}

func (s *RecordingListener) TouchDragged(event *InputEvent, x, y float32, pointer int) {
	s.record(event, x, y)
}

func (s *RecordingListener) Update() {
	s.updates++
}

func (s *RecordingListener) Cancel() {
	s.cancels++
}

type recognizerCall struct {
	kind    string
	x, y    float32
	pointer int
	button  int
}

// StubRecognizer records the input it receives and lets tests report
// gestures through the listener it was created with.
type StubRecognizer struct {
	listener gesture.Listener
	calls    []recognizerCall
	onUpdate func(listener gesture.Listener)
	resets   int
}

func (s *StubRecognizer) Factory() RecognizerFactory {
	return func(listener gesture.Listener) Recognizer {
		s.listener = listener
		return s
	}
}

func (s *StubRecognizer) TouchDown(x, y float32, pointer, button int) bool {
	s.calls = append(s.calls, recognizerCall{kind: "down", x: x, y: y, pointer: pointer, button: button})
	return false
}

func (s *StubRecognizer) TouchUp(x, y float32, pointer, button int) bool {
	s.calls = append(s.calls, recognizerCall{kind: "up", x: x, y: y, pointer: pointer, button: button})
	return false
}

func (s *StubRecognizer) TouchDragged(x, y float32, pointer int) bool {
	s.calls = append(s.calls, recognizerCall{kind: "dragged", x: x, y: y, pointer: pointer})
	return false
}

func (s *StubRecognizer) Update() bool {
	s.calls = append(s.calls, recognizerCall{kind: "update"})
	if s.onUpdate != nil {
		s.onUpdate(s.listener)
	}
	return false
}

func (s *StubRecognizer) Reset() {
	s.resets++
}

type sentCommand struct {
	topic   api.Topic
	command apitype.Command
}

type StubSender struct {
	topics   []api.Topic
	commands []sentCommand
	errors   []string
}

func (s *StubSender) SendToTopic(topic api.Topic) {
	s.topics = append(s.topics, topic)
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.commands = append(s.commands, sentCommand{topic: topic, command: command})
}

func (s *StubSender) SendError(message string, err error) {
	s.errors = append(s.errors, message)
}

type stubBatch struct {
	color apitype.Color
	draws []string
}

func (s *stubBatch) SetColor(color apitype.Color) {
	s.color = color
}

func (s *stubBatch) Color() apitype.Color {
	return s.color
}

func (s *stubBatch) Draw(region *apitype.TextureRegion, x, y, width, height float32) {
	s.draws = append(s.draws, fmt.Sprintf("%.0f,%.0f %.0fx%.0f", x, y, width, height))
}

func (s *stubBatch) DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) {
	s.draws = append(s.draws, fmt.Sprintf("%.0f,%.0f %.0fx%.0f rotated %.0f", x, y, width, height, rotation))
}

// drawingActor draws a fixed size quad at its position.
type drawingActor struct {
	Actor
}

func newDrawingActor(x, y, width, height float32) *drawingActor {
	actor := &drawingActor{}
	InitActor(&actor.Actor)
	actor.SetPosition(x, y)
	actor.SetSize(width, height)
	return actor
}

func (s *drawingActor) Draw(batch api.Batch, parentAlpha float32) {
	batch.Draw(nil, s.X(), s.Y(), s.Width(), s.Height())
}

func newActor(x, y, width, height float32) *Actor {
	actor := NewActor()
	actor.SetPosition(x, y)
	actor.SetSize(width, height)
	return actor
}

func pt(x, y float64) curve.Point {
	return curve.Point{X: x, Y: y}
}
