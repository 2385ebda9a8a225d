package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RentRequest is a renter's request against a listing, from the "rentRequests"
// collection. Owner identity is a snapshot taken at request time. The money
// fields and NumberOfDays come from several app versions and may be numbers or
// strings with currency noise; they are only read through derive.ParseAmount
// and derive.ParseDays. RentalStartDate is an unconstrained date string
// (DD/MM/YYYY, MM/DD/YYYY or YYYY-MM-DD).
type RentRequest struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                string             `bson:"userId" json:"userId"`
	UserName              string             `bson:"userName,omitempty" json:"userName"`
	UserEmail             string             `bson:"userEmail,omitempty" json:"userEmail"`
	UserPhone             string             `bson:"userPhone,omitempty" json:"userPhone"`
	UserAddress           string             `bson:"userAddress,omitempty" json:"userAddress"`
	MachineryID           string             `bson:"machineryId" json:"machineryId"`
	MachineryName         string             `bson:"machineryName,omitempty" json:"machineryName"`
	MachineryOwnerID      string             `bson:"machineryOwnerId,omitempty" json:"machineryOwnerId"`
	MachineryOwnerName    string             `bson:"machineryOwnerName,omitempty" json:"machineryOwnerName"`
	MachineryOwnerPhone   string             `bson:"machineryOwnerPhone,omitempty" json:"machineryOwnerPhone"`
	MachineryOwnerCNIC    string             `bson:"machineryOwnerCNIC,omitempty" json:"machineryOwnerCNIC"`
	MachineryOwnerAddress string             `bson:"machineryOwnerAddress,omitempty" json:"machineryOwnerAddress"`
	RentalStartDate       string             `bson:"rentalStartDate,omitempty" json:"rentalStartDate"`
	RentalDuration        string             `bson:"rentalDuration,omitempty" json:"rentalDuration"`
	NumberOfDays          interface{}        `bson:"numberOfDays,omitempty" json:"numberOfDays"`
	DeliveryLocation      string             `bson:"deliveryLocation,omitempty" json:"deliveryLocation"`
	ProjectType           string             `bson:"projectType,omitempty" json:"projectType"`
	OperatorRequired      string             `bson:"operatorRequired,omitempty" json:"operatorRequired"`
	RentPerDay            interface{}        `bson:"rentPerDay,omitempty" json:"rentPerDay"`
	TotalRent             interface{}        `bson:"totalRent,omitempty" json:"totalRent"`
	SecurityDeposit       interface{}        `bson:"securityDeposit,omitempty" json:"securityDeposit"`
	AdvancePayment        interface{}        `bson:"advancePayment,omitempty" json:"advancePayment"`
	RemainingPayment      interface{}        `bson:"remainingPayment,omitempty" json:"remainingPayment"`
	GrandTotal            interface{}        `bson:"grandTotal,omitempty" json:"grandTotal"`
	PaymentProofURL       string             `bson:"paymentProofUrl,omitempty" json:"paymentProofUrl"`
	Status                string             `bson:"status" json:"status"` // pending, approved, rejected
	AdminSeen             bool               `bson:"adminSeen,omitempty" json:"adminSeen"`
	RequestedAt           time.Time          `bson:"requestedAt,omitempty" json:"requestedAt"`
	ApprovedAt            time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	ApprovedBy            string             `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	RejectedAt            time.Time          `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	RejectedBy            string             `bson:"rejectedBy,omitempty" json:"rejectedBy,omitempty"`
}
