package fakeserver

import (
	"github.com/gin-gonic/gin"
)

func fastReturnError(msg string) gin.H {
	return gin.H{
		"error": msg,
	}
}

// fastReturnSuccess is the body genotet answers an accepted upload with.
func fastReturnSuccess() gin.H {
	return gin.H{
		"success": true,
	}
}

func fastReturnUsername(username string) gin.H {
	return gin.H{
		"username": username,
	}
}
