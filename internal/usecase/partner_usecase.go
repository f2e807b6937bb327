package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	partnerdto "github.com/47industries/affiliate-service/internal/usecase/dto/partner"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type PartnerUsecase interface {
	CreatePartner(input *partnerdto.CreatePartnerInput) (*domain.Partner, error)
	GetPartnerByID(partnerID string) (*domain.Partner, error)
	UpdateRates(input *partnerdto.UpdateRatesInput) (*domain.Partner, error)
	DeactivatePartner(partnerID string) error
	CreateLink(input *partnerdto.CreateLinkInput) (*domain.AffiliateLink, error)
	GetLinksByPartnerID(partnerID string) ([]*domain.AffiliateLink, error)
	DeactivateLink(linkID string) error
}

type DefaultPartnerUsecase struct {
	partnerRepo domain.PartnerRepository
	linkRepo    domain.LinkRepository
}

func NewDefaultPartnerUsecase(partnerRepo domain.PartnerRepository, linkRepo domain.LinkRepository) *DefaultPartnerUsecase {
	return &DefaultPartnerUsecase{
		partnerRepo: partnerRepo,
		linkRepo:    linkRepo,
	}
}

func (uc *DefaultPartnerUsecase) CreatePartner(input *partnerdto.CreatePartnerInput) (*domain.Partner, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if err := validateRates(input.ShopCommissionRate, input.FirstSaleRate, input.RecurringRate, input.ProBonus, input.ProWindowDays); err != nil {
		return nil, err
	}

	code := strings.ToLower(strings.TrimSpace(input.Code))
	if code == "" {
		generated, err := generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	partner := domain.Partner{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Email:              input.Email,
		Code:               code,
		Status:             domain.PartnerActive,
		ShopCommissionRate: input.ShopCommissionRate,
		FirstSaleRate:      input.FirstSaleRate,
		RecurringRate:      input.RecurringRate,
		ProBonus:           input.ProBonus,
		ProWindowDays:      input.ProWindowDays,
		TransferAccount:    input.TransferAccount,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := uc.partnerRepo.CreatePartner(&partner); err != nil {
		return nil, err
	}

	return &partner, nil
}

func (uc *DefaultPartnerUsecase) GetPartnerByID(partnerID string) (*domain.Partner, error) {
	return uc.partnerRepo.GetPartnerByID(partnerID)
}

// UpdateRates changes configuration for future commissions only. Historical
// commissions keep the rate snapshotted at their creation.
func (uc *DefaultPartnerUsecase) UpdateRates(input *partnerdto.UpdateRatesInput) (*domain.Partner, error) {
	if err := validateRates(input.ShopCommissionRate, input.FirstSaleRate, input.RecurringRate, input.ProBonus, input.ProWindowDays); err != nil {
		return nil, err
	}

	partner, err := uc.partnerRepo.GetPartnerByID(input.PartnerID)
	if err != nil {
		return nil, err
	}

	partner.ShopCommissionRate = input.ShopCommissionRate
	partner.FirstSaleRate = input.FirstSaleRate
	partner.RecurringRate = input.RecurringRate
	partner.ProBonus = input.ProBonus
	partner.ProWindowDays = input.ProWindowDays
	partner.TransferAccount = input.TransferAccount

	if err := uc.partnerRepo.UpdatePartner(partner); err != nil {
		return nil, err
	}

	return partner, nil
}

func (uc *DefaultPartnerUsecase) DeactivatePartner(partnerID string) error {
	return uc.partnerRepo.UpdatePartnerStatus(partnerID, domain.PartnerInactive)
}

func (uc *DefaultPartnerUsecase) CreateLink(input *partnerdto.CreateLinkInput) (*domain.AffiliateLink, error) {
	if input.Platform != domain.PlatformShop && input.Platform != domain.PlatformMotorev {
		return nil, fmt.Errorf("%w: unknown platform %q", domain.ErrValidation, input.Platform)
	}

	partner, err := uc.partnerRepo.GetPartnerByID(input.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner.Status != domain.PartnerActive {
		return nil, domain.ErrPartnerInactive
	}

	code := strings.ToLower(strings.TrimSpace(input.Code))
	if code == "" {
		generated, err := generateCode()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	link := domain.AffiliateLink{
		ID:        uuid.New().String(),
		PartnerID: partner.ID,
		Code:      code,
		Platform:  input.Platform,
		Target:    input.Target,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.linkRepo.CreateLink(&link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (uc *DefaultPartnerUsecase) GetLinksByPartnerID(partnerID string) ([]*domain.AffiliateLink, error) {
	return uc.linkRepo.GetLinksByPartnerID(partnerID)
}

// DeactivateLink kills a code permanently. Codes are never reassigned to
// another partner, so there is no reactivation-with-new-owner path.
func (uc *DefaultPartnerUsecase) DeactivateLink(linkID string) error {
	return uc.linkRepo.UpdateLinkActive(linkID, false)
}

func validateRates(shopRate, firstSaleRate, recurringRate, proBonus float64, proWindowDays int) error {
	if shopRate < 0 || firstSaleRate < 0 || recurringRate < 0 || proBonus < 0 {
		return fmt.Errorf("%w: rates must not be negative", domain.ErrValidation)
	}
	if shopRate > 100 || firstSaleRate > 100 || recurringRate > 100 {
		return fmt.Errorf("%w: percentage rates must not exceed 100", domain.ErrValidation)
	}
	if proWindowDays < 0 {
		return fmt.Errorf("%w: conversion window must not be negative", domain.ErrValidation)
	}
	return nil
}

func generateCode() (string, error) {
	codeGenerator, err := nanoid.CustomASCII(codeAlphabet, 8)
	if err != nil {
		return "", err
	}
	return codeGenerator(), nil
}
