package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	pendingMutex sync.Mutex
	pending      []func()

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) Unsubscribe(topic api.Topic, fn interface{}) {
	if err := s.bus.Unsubscribe(string(topic), fn); err != nil {
		logger.Warn.Printf("Could not unsubscribe from '%s': %s", topic, err)
	}
}

// ConnectToLoop subscribes callback so that it is run by Drain on the
// frame loop goroutine instead of the bus goroutine.
func (s *Broker) ConnectToLoop(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		sendFn := func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			reflect.ValueOf(callback).Call(args)
		}

		s.pendingMutex.Lock()
		s.pending = append(s.pending, sendFn)
		s.pendingMutex.Unlock()
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

// Drain runs the callbacks queued by ConnectToLoop subscriptions and
// returns how many were run.
func (s *Broker) Drain() int {
	s.pendingMutex.Lock()
	pending := s.pending
	s.pending = nil
	s.pendingMutex.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}
