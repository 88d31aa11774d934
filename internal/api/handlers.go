package api

import (
	"fmt"
	"net/http"

	"proposal_governance_system/internal/db/models"
	"proposal_governance_system/internal/governance"
	"proposal_governance_system/internal/services"

	"github.com/gin-gonic/gin"
)

type submitVoteRequest struct {
	VoterType  string `json:"voter_type" binding:"required"`
	VoterID    string `json:"voter_id"`
	Vote       string `json:"vote" binding:"required"`
	Reasoning  string `json:"reasoning"`
	SessionKey string `json:"session_key"`
}

type voteResponse struct {
	Success bool `json:"success"`
	services.VoteResult
}

type summaryResponse struct {
	Success     bool                 `json:"success"`
	ProposalID  string               `json:"proposal_id"`
	VoteSummary services.VoteSummary `json:"vote_summary"`
}

type pollRequest struct {
	TargetExecutives []string `json:"target_executives"`
}

type pollResponse struct {
	Success bool `json:"success"`
	services.PollResult
}

type sweepRequest struct {
	Pass string `json:"pass"`
}

type sweepResponse struct {
	Success bool `json:"success"`
	services.SweepResult
}

type decisionResponse struct {
	Success bool                   `json:"success"`
	Report  *models.DecisionReport `json:"decision_report"`
}

func (h *Handlers) SubmitVote(c *gin.Context) {
	var request submitVoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", governance.ErrValidation, err))
		return
	}

	voterID := request.VoterID
	if governance.VoterType(request.VoterType) == governance.VoterTypeCommunity && request.SessionKey != "" {
		voterID = request.SessionKey
	}

	voter, err := governance.ParseVoter(request.VoterType, voterID)
	if err != nil {
		h.fail(c, err)
		return
	}

	choice, err := governance.ParseChoice(request.Vote)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.votes.Submit(c.Request.Context(), services.VoteSubmission{
		ProposalID: c.Param("id"),
		Voter:      voter,
		Choice:     choice,
		Reasoning:  request.Reasoning,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, voteResponse{Success: true, VoteResult: result})
}

func (h *Handlers) VoteSummary(c *gin.Context) {
	summary, err := h.votes.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		Success:     true,
		ProposalID:  c.Param("id"),
		VoteSummary: summary,
	})
}

func (h *Handlers) PollExecutives(c *gin.Context) {
	var request pollRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			h.fail(c, fmt.Errorf("%w: %v", governance.ErrValidation, err))
			return
		}
	}

	result, err := h.polls.Poll(c.Request.Context(), c.Param("id"), request.TargetExecutives)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, pollResponse{Success: true, PollResult: result})
}

func (h *Handlers) RunSweep(c *gin.Context) {
	var request sweepRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			h.fail(c, fmt.Errorf("%w: %v", governance.ErrValidation, err))
			return
		}
	}

	pass, err := services.ParseSweepPass(request.Pass)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.phases.Sweep(c.Request.Context(), pass)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sweepResponse{Success: true, SweepResult: result})
}

func (h *Handlers) Decision(c *gin.Context) {
	report, err := h.decisions.GetDecision(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, decisionResponse{Success: true, Report: report})
}
