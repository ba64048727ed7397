package gesture

import "time"

const velocitySampleSize = 10

// VelocityTracker averages the movement of the last samples to estimate
// pointer velocity in pixels per second.
type VelocityTracker struct {
	lastX, lastY   float32
	deltaX, deltaY float32
	lastTime       time.Time
	numSamples     int
	meanX          [velocitySampleSize]float32
	meanY          [velocitySampleSize]float32
	meanTime       [velocitySampleSize]time.Duration
}

func (s *VelocityTracker) Start(x float32, y float32, t time.Time) {
	*s = VelocityTracker{
		lastX:    x,
		lastY:    y,
		lastTime: t,
	}
}

func (s *VelocityTracker) Update(x float32, y float32, t time.Time) {
	s.deltaX = x - s.lastX
	s.deltaY = y - s.lastY
	s.lastX = x
	s.lastY = y
	deltaTime := t.Sub(s.lastTime)
	s.lastTime = t

	index := s.numSamples % velocitySampleSize
	s.meanX[index] = s.deltaX
	s.meanY[index] = s.deltaY
	s.meanTime[index] = deltaTime
	s.numSamples++
}

func (s *VelocityTracker) DeltaX() float32 {
	return s.deltaX
}

func (s *VelocityTracker) DeltaY() float32 {
	return s.deltaY
}

func (s *VelocityTracker) LastTime() time.Time {
	return s.lastTime
}

func (s *VelocityTracker) VelocityX() float32 {
	return s.velocity(&s.meanX)
}

func (s *VelocityTracker) VelocityY() float32 {
	return s.velocity(&s.meanY)
}

func (s *VelocityTracker) velocity(values *[velocitySampleSize]float32) float32 {
	samples := min(s.numSamples, velocitySampleSize)
	if samples == 0 {
		return 0
	}

	var distance float32
	var elapsed time.Duration
	for i := 0; i < samples; i++ {
		distance += values[i]
		elapsed += s.meanTime[i]
	}
	meanSeconds := elapsed.Seconds() / float64(samples)
	if meanSeconds == 0 {
		return 0
	}
	return float32(float64(distance/float32(samples)) / meanSeconds)
}
