package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"gorm.io/datatypes"
)

func LogAuditWithConsole(userID uint, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repositories.AuditRepo) {
	if err := LogAudit(userID, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
		fmt.Printf("[LogAudit] error: %v\n", err)
	}
}

func LogAudit(
	userID uint,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repositories.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	audit := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      datatypes.JSON(oldData),
		NewData:      datatypes.JSON(newData),
		Description:  description,
	}

	return repo.CreateAuditLog(audit)
}
