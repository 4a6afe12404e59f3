package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleBool accepts true/false as well as the 0/1 numbers older
// clients send.
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	if s == "" {
		*b = false
		return nil
	}
	if v, err := strconv.ParseBool(s); err == nil {
		*b = FlexibleBool(v)
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*b = n != 0
		return nil
	}
	return fmt.Errorf("invalid boolean value %s", data)
}

type SaveDigestiveRequest struct {
	VisitDate             string       `json:"visit_date" validate:"omitempty,date"`
	DigestiveInspection   string       `json:"digestive_inspection" validate:"max=255"`
	DigestiveAuscultation string       `json:"digestive_auscultation" validate:"max=255"`
	DigestivePalpation    string       `json:"digestive_palpation" validate:"max=255"`
	Liver                 string       `json:"liver" validate:"max=255"`
	Rectal                string       `json:"rectal" validate:"max=255"`
	Smoker                FlexibleBool `json:"smoker"`
	InsuranceType         string       `json:"insurance_type" validate:"max=20"`
	Notes                 string       `json:"notes"`
	ImagePath             string       `json:"image_path" validate:"max=255"`
}

type DigestiveVisitResponse struct {
	ID                    *int64 `json:"id"`
	PatientID             int64  `json:"patient_id"`
	VisitDate             string `json:"visit_date"`
	DigestiveInspection   string `json:"digestive_inspection"`
	DigestiveAuscultation string `json:"digestive_auscultation"`
	DigestivePalpation    string `json:"digestive_palpation"`
	Liver                 string `json:"liver"`
	Rectal                string `json:"rectal"`
	Smoker                bool   `json:"smoker"`
	InsuranceType         string `json:"insurance_type"`
	Notes                 string `json:"notes"`
	ImagePath             string `json:"image_path"`
}
