package system_controller

const RootMessage = "CertifyPro backend is running ✅"

// SystemController serves liveness and diagnostic endpoints.
type SystemController struct {
	serviceName string
}

func NewSystemController(serviceName string) *SystemController {
	return &SystemController{serviceName: serviceName}
}
