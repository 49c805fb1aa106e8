package testutil

import (
	"fmt"
	"reflect"

	"github.com/virality-gg/backend/internal/entity"
)

func overwriteFields(dst any, overwrite any) {
	dstValue := reflect.ValueOf(dst).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		field := overwriteValue.Field(i)
		if field.IsZero() {
			continue
		}

		name := overwriteValue.Type().Field(i).Name
		dstField := dstValue.FieldByName(name)
		if !dstField.IsValid() {
			panic(fmt.Sprintf("field %s is invalid", name))
		}

		dstField.Set(field)
	}
}

func SampleCampaign(overwrite entity.Campaign) *entity.Campaign {
	campaign := &entity.Campaign{
		Title:        "Sample Campaign",
		Status:       entity.CampaignActive,
		PayoutAmount: 10,
	}

	overwriteFields(campaign, overwrite)
	return campaign
}

func SampleSubmission(overwrite entity.Submission) *entity.Submission {
	submission := &entity.Submission{
		CampaignID: Campaign1.ID,
		CreatorID:  User1.ID,
		ContentURL: "https://youtu.be/sample",
		Platform:   entity.PlatformYoutube,
		Status:     entity.SubmissionPending,
	}

	overwriteFields(submission, overwrite)
	return submission
}
