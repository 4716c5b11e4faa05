package domain

import "encoding/json"

// StaffAssignment предпочтительный сотрудник для груминга или дрессировки
// Нулевое значение Unassigned: бронирование берет любой сотрудник смены
type StaffAssignment struct {
	staffID string
}

// Unassigned без предпочтений
func Unassigned() StaffAssignment {
	return StaffAssignment{}
}

// SpecificStaff закрепляет бронирование за сотрудником
// Пустой ID дает Unassigned
func SpecificStaff(staffID string) StaffAssignment {
	return StaffAssignment{staffID: staffID}
}

// IsUnassigned true, если подходит любой сотрудник
func (a StaffAssignment) IsUnassigned() bool {
	return a.staffID == ""
}

// StaffID ID закрепленного сотрудника и true, либо "" и false
func (a StaffAssignment) StaffID() (string, bool) {
	return a.staffID, a.staffID != ""
}

// MarshalJSON {"type":"unassigned"} или {"type":"specific","staffId":"..."}
func (a StaffAssignment) MarshalJSON() ([]byte, error) {
	if a.IsUnassigned() {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "unassigned"})
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		StaffID string `json:"staffId"`
	}{Type: "specific", StaffID: a.staffID})
}
