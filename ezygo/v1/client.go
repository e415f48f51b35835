package v1

type EzygoClient struct {
	Transport  *Transport
	Attendance *AttendanceEndpoint
}

// NewEzygoClient initializes the API client
func NewEzygoClient(baseURL string, token string) *EzygoClient {
	t := NewTransport(baseURL, token)
	return &EzygoClient{
		Transport:  t,
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
