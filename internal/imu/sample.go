package imu

// Sample represents a single raw accel+gyro sample.
type Sample struct {
	Ax int16 `json:"ax"` // accel
	Ay int16 `json:"ay"`
	Az int16 `json:"az"`

	Gx int16 `json:"gx"` // gyro
	Gy int16 `json:"gy"`
	Gz int16 `json:"gz"`

	TempC       float32 `json:"temp_c"`
	TimestampNs int64   `json:"timestamp_ns"`
}

// MotionEvent is published when the wake-up interrupt fires.
type MotionEvent struct {
	TimestampMs int64 `json:"timestamp_ms"`
	WakeX       bool  `json:"wake_x"`
	WakeY       bool  `json:"wake_y"`
	WakeZ       bool  `json:"wake_z"`
}

// StepCount is the pedometer output.
type StepCount struct {
	Steps       uint16 `json:"steps"`
	TimestampMs int64  `json:"timestamp_ms"`
}
