package response

import "github.com/gin-gonic/gin"

// Canonical user-visible strings. Failures never leak internals; the
// login path never distinguishes unknown username from wrong password.
const (
	MsgServerError        = "Server error"
	MsgInvalidCredentials = "Invalid credentials"
	MsgAdminNotFound      = "Admin not found"
	MsgWrongPassword      = "Current password is incorrect"
	MsgInvalidStatus      = "Invalid status"
	MsgDonationCreated    = "Donation created successfully"
	MsgStatusUpdated      = "Status updated successfully"
	MsgPasswordChanged    = "Password changed successfully"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
